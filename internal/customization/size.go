package customization

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size bounds for custom pixel dimensions, inclusive.
const (
	MinCustomSize uint32 = 50
	MaxCustomSize uint32 = 2000
)

type sizeKind uint8

// The zero sizeKind is medium so that a zero Size is the default size.
const (
	sizeMedium sizeKind = iota
	sizeSmall
	sizeLarge
	sizeCustom
)

// Size is one of the three presets or a custom pixel dimension.
// The zero value is Medium.
type Size struct {
	kind   sizeKind
	pixels uint32
}

// Preset sizes.
var (
	SizeSmall  = Size{kind: sizeSmall}
	SizeMedium = Size{kind: sizeMedium}
	SizeLarge  = Size{kind: sizeLarge}
)

// CustomSize returns a Size with an explicit pixel dimension.
// Bounds are checked by Validate, not here.
func CustomSize(pixels uint32) Size {
	return Size{kind: sizeCustom, pixels: pixels}
}

// IsCustom reports whether s carries an explicit pixel dimension.
func (s Size) IsCustom() bool {
	return s.kind == sizeCustom
}

// Pixels returns the edge length of the rendered image.
func (s Size) Pixels() uint32 {
	switch s.kind {
	case sizeSmall:
		return 150
	case sizeLarge:
		return 600
	case sizeCustom:
		return s.pixels
	default:
		return 300
	}
}

// Validate checks custom sizes against [MinCustomSize, MaxCustomSize].
// Presets are always valid.
func (s Size) Validate() error {
	if s.kind != sizeCustom {
		return nil
	}
	if s.pixels < MinCustomSize {
		return fmt.Errorf("Custom size must be at least %d pixels", MinCustomSize)
	}
	if s.pixels > MaxCustomSize {
		return fmt.Errorf("Custom size cannot exceed %d pixels", MaxCustomSize)
	}
	return nil
}

// Name returns the preset name, or "custom".
func (s Size) Name() string {
	switch s.kind {
	case sizeSmall:
		return "small"
	case sizeLarge:
		return "large"
	case sizeCustom:
		return "custom"
	default:
		return "medium"
	}
}

// String renders the size label used in responses, e.g. "medium (300px)".
func (s Size) String() string {
	return fmt.Sprintf("%s (%dpx)", s.Name(), s.Pixels())
}

// ParseSize accepts "small", "medium", "large" in any case, or an unsigned
// integer which becomes a custom size.
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(s) {
	case "small":
		return SizeSmall, nil
	case "medium":
		return SizeMedium, nil
	case "large":
		return SizeLarge, nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return Size{}, errors.New("Size must be 'small', 'medium', 'large', or a number")
	}
	return CustomSize(uint32(n)), nil
}

// MarshalJSON encodes presets as their name and custom sizes as {"custom": n}.
func (s Size) MarshalJSON() ([]byte, error) {
	if s.kind == sizeCustom {
		return json.Marshal(map[string]uint32{"custom": s.pixels})
	}
	return json.Marshal(s.Name())
}

// UnmarshalJSON accepts a preset name, {"custom": n}, or a bare number.
func (s *Size) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		parsed, err := ParseSize(name)
		if err != nil {
			return err
		}
		*s = parsed
		return nil

	case '{':
		var obj struct {
			Custom *uint32 `json:"custom"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Custom == nil {
			return errors.New(`size object must have a "custom" field`)
		}
		*s = CustomSize(*obj.Custom)
		return nil

	default:
		var n uint32
		if err := json.Unmarshal(data, &n); err != nil {
			return errors.New("Size must be 'small', 'medium', 'large', or a number")
		}
		*s = CustomSize(n)
		return nil
	}
}
