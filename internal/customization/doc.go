// Package customization turns loosely typed QR rendering options into a strict,
// validated configuration.
//
// Two wire shapes are accepted. The structured form is a Customization decoded
// from JSON, where every field is optional and missing fields take their
// defaults. The flattened form is a set of independent optional strings, as
// found in query parameters or CLI flags, which the Normalizer coerces into a
// Customization.
//
// The Validator applies a fixed sequence of rules to the target text and the
// customization, stopping at the first violation:
//
//	v := customization.NewValidator(2048)
//	cfg, err := v.ValidateRequest("https://example.com", customization.DefaultCustomization())
//	if err != nil {
//		var verr *customization.ValidationError
//		if errors.As(err, &verr) {
//			// 400, verr.Message is safe to show to the client
//		}
//	}
//	// cfg.PixelSize == 300, cfg.Foreground == RGB{0, 0, 0}
//
// Colors are compared by value, so "#FFFFFF" and "#ffffff" are the same color.
// Contrast is computed from WCAG relative luminance and must be at least 3:1.
//
// Everything in this package is pure: values are immutable once validated and
// safe to use from any number of goroutines.
package customization
