package customization

// Flattened is the query-string shape of a Customization. A nil field means
// the parameter was not supplied.
type Flattened struct {
	Size            *string `query:"size"`
	Format          *string `query:"format"`
	ErrorCorrection *string `query:"error_correction"`
	ForegroundColor *string `query:"foreground_color"`
	BackgroundColor *string `query:"background_color"`
	BorderWidth     *uint32 `query:"border_width"`
}

// Defaults are the process-wide colors used when a request leaves one out.
type Defaults struct {
	Foreground string
	Background string
}

// Normalizer coerces flattened input into a Customization.
type Normalizer struct {
	defaults Defaults
}

// NewNormalizer returns a Normalizer using d for absent colors.
// Empty fields in d fall back to DefaultForeground and DefaultBackground.
func NewNormalizer(d Defaults) Normalizer {
	if d.Foreground == "" {
		d.Foreground = DefaultForeground
	}
	if d.Background == "" {
		d.Background = DefaultBackground
	}
	return Normalizer{defaults: d}
}

// Defaults returns the customization a request with no options resolves to.
func (n Normalizer) Defaults() Customization {
	c := DefaultCustomization()
	if n.defaults.Foreground != "" {
		c.Colors.Foreground = n.defaults.Foreground
	}
	if n.defaults.Background != "" {
		c.Colors.Background = n.defaults.Background
	}
	return c
}

// Resolve applies each supplied field on top of the defaults and validates
// the result. The first malformed field ends resolution.
func (n Normalizer) Resolve(f Flattened) (Customization, error) {
	c := n.Defaults()

	if f.Size != nil {
		size, err := ParseSize(*f.Size)
		if err != nil {
			return Customization{}, validationWrap(err.Error(), err)
		}
		c.Size = size
	}

	if f.Format != nil {
		format, err := ParseFormat(*f.Format)
		if err != nil {
			return Customization{}, validationWrap(err.Error(), err)
		}
		c.Format = format
	}

	if f.ErrorCorrection != nil {
		ec, err := ParseErrorCorrection(*f.ErrorCorrection)
		if err != nil {
			return Customization{}, validationWrap(err.Error(), err)
		}
		c.ErrorCorrection = ec
	}

	if f.ForegroundColor != nil || f.BackgroundColor != nil {
		fg, bg := c.Colors.Foreground, c.Colors.Background
		if f.ForegroundColor != nil {
			fg = *f.ForegroundColor
		}
		if f.BackgroundColor != nil {
			bg = *f.BackgroundColor
		}
		colors, err := NewColors(fg, bg)
		if err != nil {
			return Customization{}, validationWrap(err.Error(), err)
		}
		c.Colors = colors
	}

	if f.BorderWidth != nil {
		c.BorderWidth = *f.BorderWidth
	}

	if err := c.Validate(); err != nil {
		return Customization{}, err
	}
	return c, nil
}
