package api

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/qrgen/core/binder"
	"github.com/dmitrymomot/qrgen/core/response"
	"github.com/dmitrymomot/qrgen/internal/customization"
)

// Error codes carried in the JSON error body.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeGeneration      = "GENERATION_ERROR"
	CodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
)

// toHTTPError maps domain and binding failures onto the API error envelope.
// Anything unrecognised is reported as a generation failure.
func toHTTPError(err error) response.HTTPError {
	var verr *customization.ValidationError
	switch {
	case errors.As(err, &verr):
		return response.NewHTTPError(http.StatusBadRequest, CodeValidation, verr.Message)
	case errors.Is(err, binder.ErrBodyTooLarge):
		return response.NewHTTPError(http.StatusRequestEntityTooLarge, CodePayloadTooLarge, "Request body too large")
	case errors.Is(err, binder.ErrUnsupportedMediaType),
		errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseQuery):
		return response.NewHTTPError(http.StatusBadRequest, CodeValidation, err.Error())
	default:
		return response.NewHTTPError(http.StatusInternalServerError, CodeGeneration, "Failed to generate QR code").
			WithError(err)
	}
}
