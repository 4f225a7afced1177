// Package api is the HTTP surface of the QR service.
//
// Routes:
//
//	GET  /                service index
//	GET  /health/live     liveness probe
//	GET  /health/ready    readiness probe (renders a probe code)
//	GET  /metrics         Prometheus exposition
//	GET  /generate?url=   legacy JSON response with a PNG data URI
//	GET  /image?url=      legacy PNG download
//	POST /v2/generate     JSON body, JSON envelope response
//	GET  /v2/generate     query parameters, JSON envelope response
//	POST /v2/image        JSON body, image download
//
// Validation failures are 400 with code VALIDATION_ERROR, render failures
// 500 with code GENERATION_ERROR.
package api
