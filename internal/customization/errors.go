package customization

import (
	"errors"
	"net/http"
)

// ErrInvariant reports a state that validation should have made impossible,
// such as a malformed hex color inside an accepted configuration.
var ErrInvariant = errors.New("customization: invariant violated")

// ErrInsufficientContrast is returned when a color pair is below MinContrastRatio.
var ErrInsufficientContrast = errors.New("Insufficient color contrast. Please ensure at least 3:1 contrast ratio for accessibility")

// ValidationError is the single failure category produced by normalization and
// validation. Message is human readable and meant to reach the client unchanged.
type ValidationError struct {
	Message string
	cause   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// StatusCode maps every validation failure to 400 Bad Request.
func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

// Unwrap exposes the rule-level error, if any.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

func validationf(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func validationWrap(message string, cause error) *ValidationError {
	return &ValidationError{Message: message, cause: cause}
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
