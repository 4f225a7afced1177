package customization

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Border width bounds, in quiet-zone modules.
const (
	DefaultBorderWidth uint32 = 4
	MaxBorderWidth     uint32 = 50
)

// Customization holds the user-supplied rendering options.
type Customization struct {
	Size            Size            `json:"size"`
	ErrorCorrection ErrorCorrection `json:"error_correction"`
	Colors          Colors          `json:"colors"`
	BorderWidth     uint32          `json:"border_width"`
	Format          Format          `json:"format"`
}

// DefaultCustomization returns medium size, level M, black on white,
// a border of 4 and PNG output.
func DefaultCustomization() Customization {
	return Customization{
		Size:            SizeMedium,
		ErrorCorrection: DefaultErrorCorrection,
		Colors:          DefaultColors(),
		BorderWidth:     DefaultBorderWidth,
		Format:          DefaultFormat,
	}
}

// Validate checks size bounds, colors and border width, in that order, and
// returns the first failure as a *ValidationError.
func (c Customization) Validate() error {
	if err := c.Size.Validate(); err != nil {
		return validationWrap("Size validation failed: "+err.Error(), err)
	}

	if err := c.Colors.Validate(); err != nil {
		if errors.Is(err, ErrInsufficientContrast) {
			return validationWrap(err.Error(), err)
		}
		return validationWrap("Color validation failed: "+err.Error(), err)
	}

	if c.BorderWidth > MaxBorderWidth {
		return validationf(fmt.Sprintf("Border width cannot exceed %d pixels", MaxBorderWidth))
	}

	// Enum fields can only be invalid when built in code, not when decoded.
	if !c.ErrorCorrection.Valid() {
		return validationf(errInvalidErrorCorrection.Error())
	}
	if !c.Format.Valid() {
		return validationf(errInvalidFormat.Error())
	}

	return nil
}

// UnmarshalJSON applies defaults to every field missing from data.
func (c *Customization) UnmarshalJSON(data []byte) error {
	type plain Customization
	v := plain(DefaultCustomization())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Customization(v)
	return nil
}
