package customization

import (
	"fmt"
	"strings"
	"unicode"
)

// DefaultMaxTextLength is the default limit on the encoded text, in bytes.
const DefaultMaxTextLength = 2048

// unsafePatterns are rejected anywhere in an http(s) URL and as a scheme
// prefix of any text.
var unsafePatterns = []string{"javascript:", "data:", "vbscript:", "file:", "ftp:"}

// Validator enforces the request rules in a fixed order and reports only the
// first violation.
type Validator struct {
	maxTextLength int
	field         string
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithFieldName sets the name used for the target text in messages.
// Defaults to "URL".
func WithFieldName(name string) ValidatorOption {
	return func(v *Validator) {
		if name != "" {
			v.field = name
		}
	}
}

// NewValidator returns a Validator with the given text limit.
// A non-positive limit falls back to DefaultMaxTextLength.
func NewValidator(maxTextLength int, opts ...ValidatorOption) Validator {
	if maxTextLength <= 0 {
		maxTextLength = DefaultMaxTextLength
	}
	v := Validator{maxTextLength: maxTextLength, field: "URL"}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// MaxTextLength returns the configured limit.
func (v Validator) MaxTextLength() int {
	return v.maxTextLength
}

// ValidateText runs the text rules: non-empty, length, content shape and URL
// safety.
func (v Validator) ValidateText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return validationf(v.field + " cannot be empty")
	}

	if len(text) > v.maxTextLength {
		return validationf(fmt.Sprintf("%s too long (max %d characters)", v.field, v.maxTextLength))
	}

	lower := strings.ToLower(trimmed)

	if p, ok := unsafeSchemePrefix(lower); ok {
		return validationf("URL contains potentially unsafe protocol: " + p)
	}

	if !looksLikeURL(trimmed) {
		if strings.ContainsAny(trimmed, "\n\r") {
			return validationf("Text content cannot contain newlines")
		}
		return nil
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		for _, p := range unsafePatterns {
			if strings.Contains(lower, p) {
				return validationf("URL contains potentially unsafe protocol: " + p)
			}
		}
		if !strings.Contains(trimmed, ".") {
			return validationf("URL appears to be malformed (missing domain)")
		}
	}

	return nil
}

// ValidateRequest validates text and customization and resolves the
// rendering parameters. Every failure is a *ValidationError.
func (v Validator) ValidateRequest(text string, c Customization) (ResolvedConfig, error) {
	if err := v.ValidateText(text); err != nil {
		return ResolvedConfig{}, err
	}
	if err := c.Validate(); err != nil {
		return ResolvedConfig{}, err
	}
	return resolve(text, c)
}

func looksLikeURL(s string) bool {
	return strings.Contains(s, "://") || strings.HasPrefix(s, "http") || strings.HasPrefix(s, "mailto:")
}

// unsafeSchemePrefix reports a dangerous scheme at the start of text. The
// colon must be followed by a non-space character or end the text, so prose
// such as "Data: 42 units" is not a scheme.
func unsafeSchemePrefix(lower string) (string, bool) {
	for _, p := range unsafePatterns {
		rest, ok := strings.CutPrefix(lower, p)
		if !ok {
			continue
		}
		if rest == "" || !unicode.IsSpace(rune(rest[0])) {
			return p, true
		}
	}
	return "", false
}
