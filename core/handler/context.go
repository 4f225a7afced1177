package handler

import (
	"context"
	"net/http"
)

// Context is the per-request context handed to handlers. It is a
// context.Context bound to the request's lifetime.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// Param returns a path wildcard value, or "" if absent.
	Param(key string) string
	// SetValue stores a request-scoped value readable through Value.
	SetValue(key, val any)
}
