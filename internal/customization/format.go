package customization

import (
	"encoding/json"
	"errors"
	"strings"
)

// Format is the output image encoding.
type Format string

// Output formats.
const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatJPEG Format = "jpeg"
)

// DefaultFormat is used when the request does not name a format.
const DefaultFormat = FormatPNG

var errInvalidFormat = errors.New("Format must be 'png', 'svg', or 'jpeg'")

// ParseFormat accepts png, svg, jpeg or jpg in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return "", errInvalidFormat
	}
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	switch f {
	case FormatPNG, FormatSVG, FormatJPEG:
		return true
	}
	return false
}

// ContentType returns the MIME type of the encoded image.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatJPEG:
		return "image/jpeg"
	default:
		return "image/png"
	}
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatSVG:
		return "svg"
	case FormatJPEG:
		return "jpg"
	default:
		return "png"
	}
}

// String returns the lowercase format name.
func (f Format) String() string {
	return string(f)
}

// UnmarshalJSON accepts any spelling ParseFormat accepts.
func (f *Format) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errInvalidFormat
	}
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
