package response

import (
	"maps"
	"net/http"
)

// HTTPError is an error with a status and a JSON body of {code, message}.
type HTTPError struct {
	Status  int            `json:"-"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// NewHTTPError returns an HTTPError with the given status, code and message.
func NewHTTPError(status int, code, message string) HTTPError {
	return HTTPError{Status: status, Code: code, Message: message}
}

func (e HTTPError) Error() string   { return e.Message }
func (e HTTPError) StatusCode() int { return e.Status }

// WithMessage returns a copy with message replaced.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithDetails returns a copy with details replaced.
func (e HTTPError) WithDetails(details map[string]any) HTTPError {
	e.Details = details
	return e
}

// WithError returns a copy whose details carry err's message as "cause".
func (e HTTPError) WithError(err error) HTTPError {
	details := make(map[string]any, len(e.Details)+1)
	maps.Copy(details, e.Details)
	details["cause"] = err.Error()
	e.Details = details
	return e
}

func statusError(status int, code string) HTTPError {
	return HTTPError{Status: status, Code: code, Message: http.StatusText(status)}
}

var (
	ErrBadRequest            = statusError(http.StatusBadRequest, "bad_request")
	ErrNotFound              = statusError(http.StatusNotFound, "not_found")
	ErrMethodNotAllowed      = statusError(http.StatusMethodNotAllowed, "method_not_allowed")
	ErrRequestEntityTooLarge = statusError(http.StatusRequestEntityTooLarge, "request_entity_too_large")
	ErrUnsupportedMediaType  = statusError(http.StatusUnsupportedMediaType, "unsupported_media_type")
	ErrUnprocessableEntity   = statusError(http.StatusUnprocessableEntity, "unprocessable_entity")
	ErrTooManyRequests       = statusError(http.StatusTooManyRequests, "too_many_requests")
	ErrInternalServerError   = statusError(http.StatusInternalServerError, "internal_server_error")
	ErrServiceUnavailable    = statusError(http.StatusServiceUnavailable, "service_unavailable")
)

var httpErrorsByStatus = map[int]HTTPError{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusNotFound:              ErrNotFound,
	http.StatusMethodNotAllowed:      ErrMethodNotAllowed,
	http.StatusRequestEntityTooLarge: ErrRequestEntityTooLarge,
	http.StatusUnsupportedMediaType:  ErrUnsupportedMediaType,
	http.StatusUnprocessableEntity:   ErrUnprocessableEntity,
	http.StatusTooManyRequests:       ErrTooManyRequests,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusServiceUnavailable:    ErrServiceUnavailable,
}
