// Package router is a generic HTTP router built on net/http.ServeMux.
//
// Handlers receive a typed context C and return a handler.Response. Patterns
// use ServeMux wildcard syntax ("/items/{id}", "/files/{path...}"); the
// method is chosen by the registration call rather than the pattern, so a
// pattern registered for GET answers other methods with 405 and an Allow
// header. A pattern ending in "/" matches only that exact path.
//
// # Basic Usage
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
//	)
//	r.Use(middleware.RequestID[*router.Context]())
//
//	r.Get("/items/{id}", func(ctx *router.Context) handler.Response {
//		return response.JSON(map[string]string{"id": ctx.Param("id")})
//	})
//
//	http.ListenAndServe(":8080", r)
//
// # Groups
//
// Route registers everything in fn under a path prefix; With and Group add
// middleware to a subset of routes without a prefix:
//
//	r.Route("/v2", func(r router.Router[*router.Context]) {
//		r.Post("/generate", generate)
//	})
//	r.With(auth).Get("/admin", admin)
//
// # Errors
//
// Unmatched paths reach the error handler as ErrNotFound, unsupported
// methods as ErrMethodNotAllowed, and recovered panics as a PanicError.
// Both unmatched cases still pass through the root middlewares.
// Errors implementing StatusCode() int choose their own status.
package router
