package customization

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var errSameColors = errors.New("Foreground and background colors cannot be the same")

// Default colors: black modules on a white background.
const (
	DefaultForeground = "#000000"
	DefaultBackground = "#FFFFFF"
)

// Colors is a foreground/background pair of "#RRGGBB" strings.
type Colors struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// DefaultColors returns black on white.
func DefaultColors() Colors {
	return Colors{Foreground: DefaultForeground, Background: DefaultBackground}
}

// NewColors builds a validated pair.
func NewColors(foreground, background string) (Colors, error) {
	c := Colors{Foreground: foreground, Background: background}
	if err := c.Validate(); err != nil {
		return Colors{}, err
	}
	return c, nil
}

// Validate checks the syntax of both colors, that they differ, and that
// their contrast ratio is at least MinContrastRatio. A low contrast pair
// returns ErrInsufficientContrast.
func (c Colors) Validate() error {
	fg, err := parseColor(c.Foreground, "foreground")
	if err != nil {
		return err
	}
	bg, err := parseColor(c.Background, "background")
	if err != nil {
		return err
	}
	if fg == bg {
		return errSameColors
	}
	if ContrastRatio(fg, bg) < MinContrastRatio {
		return ErrInsufficientContrast
	}
	return nil
}

// ForegroundRGB parses the foreground color.
func (c Colors) ForegroundRGB() (RGB, error) {
	return ParseHex(c.Foreground)
}

// BackgroundRGB parses the background color.
func (c Colors) BackgroundRGB() (RGB, error) {
	return ParseHex(c.Background)
}

// ContrastRatio returns the contrast ratio of the pair.
func (c Colors) ContrastRatio() (float64, error) {
	fg, err := c.ForegroundRGB()
	if err != nil {
		return 0, err
	}
	bg, err := c.BackgroundRGB()
	if err != nil {
		return 0, err
	}
	return ContrastRatio(fg, bg), nil
}

// HasSufficientContrast reports whether the pair meets MinContrastRatio.
func (c Colors) HasSufficientContrast() (bool, error) {
	ratio, err := c.ContrastRatio()
	if err != nil {
		return false, err
	}
	return ratio >= MinContrastRatio, nil
}

// String returns "fg: #000000, bg: #FFFFFF".
func (c Colors) String() string {
	return fmt.Sprintf("fg: %s, bg: %s", c.Foreground, c.Background)
}

// UnmarshalJSON defaults each missing color independently.
func (c *Colors) UnmarshalJSON(data []byte) error {
	type plain Colors
	v := plain(DefaultColors())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Colors(v)
	return nil
}

// ParseHex parses "#RRGGBB" into an RGB triple.
func ParseHex(s string) (RGB, error) {
	if err := checkHexSyntax(s, "color"); err != nil {
		return RGB{}, err
	}
	return hexToRGB(s[1:])
}

func parseColor(s, kind string) (RGB, error) {
	if err := checkHexSyntax(s, kind); err != nil {
		return RGB{}, err
	}
	return hexToRGB(s[1:])
}

func checkHexSyntax(s, kind string) error {
	if len(s) == 0 || s[0] != '#' {
		return fmt.Errorf("%s color must start with '#'", kind)
	}
	hex := s[1:]
	if len(hex) != 6 {
		return fmt.Errorf("%s color must be 6 hex digits (e.g., #FF0000)", kind)
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return fmt.Errorf("%s color contains invalid hex characters", kind)
		}
	}
	return nil
}

func hexToRGB(hex string) (RGB, error) {
	var out [3]uint8
	for i := range out {
		n, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: invalid hex component %q", ErrInvariant, hex[i*2:i*2+2])
		}
		out[i] = uint8(n)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
