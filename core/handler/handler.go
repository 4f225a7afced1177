package handler

import "net/http"

// Response renders an HTTP response. Headers, status and body are written
// when the router invokes it; a returned error goes to the ErrorHandler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc handles a request using a typed context.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler renders err for the request in ctx.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps a handler.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
