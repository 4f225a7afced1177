package customization

import (
	"fmt"
	"strings"
)

// ResolvedConfig is a validated, fully defaulted configuration ready for
// rendering.
type ResolvedConfig struct {
	Text            string
	PixelSize       uint32
	Foreground      RGB
	Background      RGB
	BorderWidth     uint32
	ErrorCorrection ErrorCorrection
	Format          Format
	ContentType     string
	FileExtension   string

	customization Customization
}

// Metadata is the descriptive part of a JSON response envelope.
type Metadata struct {
	Format          string `json:"format"`
	Size            string `json:"size"`
	ErrorCorrection string `json:"error_correction"`
	Colors          Colors `json:"colors"`
	BorderWidth     uint32 `json:"border_width"`
}

// Customization returns the options the config was resolved from.
func (rc ResolvedConfig) Customization() Customization {
	return rc.customization
}

// Metadata describes the config for response envelopes.
func (rc ResolvedConfig) Metadata() Metadata {
	c := rc.customization
	return Metadata{
		Format:          strings.ToLower(c.Format.String()),
		Size:            c.Size.String(),
		ErrorCorrection: c.ErrorCorrection.Label(),
		Colors:          c.Colors,
		BorderWidth:     c.BorderWidth,
	}
}

// Filename returns the download name, e.g. "qrcode-300x300.png".
func (rc ResolvedConfig) Filename() string {
	return fmt.Sprintf("qrcode-%dx%d.%s", rc.PixelSize, rc.PixelSize, rc.FileExtension)
}

func resolve(text string, c Customization) (ResolvedConfig, error) {
	fg, err := c.Colors.ForegroundRGB()
	if err != nil {
		return ResolvedConfig{}, fmt.Errorf("%w: foreground: %v", ErrInvariant, err)
	}
	bg, err := c.Colors.BackgroundRGB()
	if err != nil {
		return ResolvedConfig{}, fmt.Errorf("%w: background: %v", ErrInvariant, err)
	}

	return ResolvedConfig{
		Text:            text,
		PixelSize:       c.Size.Pixels(),
		Foreground:      fg,
		Background:      bg,
		BorderWidth:     c.BorderWidth,
		ErrorCorrection: c.ErrorCorrection,
		Format:          c.Format,
		ContentType:     c.Format.ContentType(),
		FileExtension:   c.Format.Extension(),
		customization:   c,
	}, nil
}

// Input carries one of the two wire shapes. Flattened wins when both are set;
// when neither is set the normalizer defaults are used.
type Input struct {
	Structured *Customization
	Flattened  *Flattened
}

// NormalizeAndValidate is the single entry point for transports: it
// normalizes in, then validates it together with text.
func NormalizeAndValidate(text string, in Input, v Validator, n Normalizer) (ResolvedConfig, error) {
	var c Customization
	switch {
	case in.Flattened != nil:
		resolved, err := n.Resolve(*in.Flattened)
		if err != nil {
			return ResolvedConfig{}, err
		}
		c = resolved
	case in.Structured != nil:
		c = *in.Structured
	default:
		c = n.Defaults()
	}
	return v.ValidateRequest(text, c)
}
