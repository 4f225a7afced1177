// Package handler defines the request-processing contract shared by the
// router, response helpers and middleware.
//
// A handler receives a typed context and returns a Response. The Response is
// a deferred render step: the router runs it against the real writer and
// hands any error it returns to the configured ErrorHandler.
//
//	func ping(ctx *router.Context) handler.Response {
//		return response.String("pong")
//	}
//
// Middleware wraps a HandlerFunc and returns another, so cross-cutting
// concerns keep the same typed context:
//
//	func Timing[C handler.Context](next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//		return func(ctx C) handler.Response {
//			start := time.Now()
//			resp := next(ctx)
//			slog.Debug("handled", "took", time.Since(start))
//			return resp
//		}
//	}
package handler
