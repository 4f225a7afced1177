// Package middleware provides HTTP middleware for the router: request IDs,
// request logging, CORS, request body limits and security headers.
//
// Every middleware is generic over the handler context and has a default
// constructor plus a WithConfig variant:
//
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.LoggingWithLogger[*router.Context](log),
//		middleware.CORSWithConfig[*router.Context](middleware.CORSConfig{
//			AllowOrigins: []string{"https://app.example.com"},
//		}),
//		middleware.BodyLimitWithSize[*router.Context](64*middleware.KB),
//		middleware.SecurityHeaders[*router.Context](),
//	)
//
// Register RequestID first so that later middleware and handlers can read
// the ID with GetRequestID, and build the logger with RequestIDExtractor to
// have it attached to every record.
package middleware
