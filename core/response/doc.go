// Package response builds handler.Response values for common payloads and
// renders errors.
//
//	func show(ctx *router.Context) handler.Response {
//		return response.JSON(item)
//	}
//
//	func download(ctx *router.Context) handler.Response {
//		return response.Attachment(data, "report.png", "image/png")
//	}
//
// Errors returned from a handler, or by a Response while rendering, reach the
// router's error handler. JSONErrorHandler and ErrorHandler render them: an
// HTTPError is used as is, an error implementing StatusCode() int maps to the
// predefined HTTPError for that status, and anything else becomes a 500.
package response
