package customization

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCorrection is the QR error-correction level. It is handed to the
// encoder as is; nothing here depends on its recovery capacity.
type ErrorCorrection string

// Error-correction levels.
const (
	ErrorCorrectionL ErrorCorrection = "L"
	ErrorCorrectionM ErrorCorrection = "M"
	ErrorCorrectionQ ErrorCorrection = "Q"
	ErrorCorrectionH ErrorCorrection = "H"
)

// DefaultErrorCorrection is used when the request does not name a level.
const DefaultErrorCorrection = ErrorCorrectionM

var errInvalidErrorCorrection = errors.New("Error correction must be 'L', 'M', 'Q', or 'H'")

// ParseErrorCorrection accepts a single level letter in any case.
func ParseErrorCorrection(s string) (ErrorCorrection, error) {
	switch ec := ErrorCorrection(strings.ToUpper(s)); ec {
	case ErrorCorrectionL, ErrorCorrectionM, ErrorCorrectionQ, ErrorCorrectionH:
		return ec, nil
	default:
		return "", errInvalidErrorCorrection
	}
}

// Valid reports whether ec is one of the four levels.
func (ec ErrorCorrection) Valid() bool {
	switch ec {
	case ErrorCorrectionL, ErrorCorrectionM, ErrorCorrectionQ, ErrorCorrectionH:
		return true
	}
	return false
}

// Description returns a human readable recovery capacity.
func (ec ErrorCorrection) Description() string {
	switch ec {
	case ErrorCorrectionL:
		return "Low (~7% recovery)"
	case ErrorCorrectionM:
		return "Medium (~15% recovery)"
	case ErrorCorrectionQ:
		return "Quartile (~25% recovery)"
	case ErrorCorrectionH:
		return "High (~30% recovery)"
	default:
		return "Unknown"
	}
}

// Label returns the level letter.
func (ec ErrorCorrection) Label() string {
	return string(ec)
}

// String returns e.g. "M - Medium (~15% recovery)".
func (ec ErrorCorrection) String() string {
	return fmt.Sprintf("%s - %s", string(ec), ec.Description())
}

// UnmarshalJSON accepts the level letter in any case.
func (ec *ErrorCorrection) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errInvalidErrorCorrection
	}
	parsed, err := ParseErrorCorrection(s)
	if err != nil {
		return err
	}
	*ec = parsed
	return nil
}
