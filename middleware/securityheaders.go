package middleware

import (
	"maps"
	"net/http"

	"github.com/dmitrymomot/qrgen/core/handler"
)

// SecurityHeadersConfig configures SecurityHeadersWithConfig. Empty fields
// are not sent.
type SecurityHeadersConfig struct {
	Skip func(ctx handler.Context) bool

	ContentTypeOptions        string
	FrameOptions              string
	ReferrerPolicy            string
	ContentSecurityPolicy     string
	CrossOriginResourcePolicy string

	// StrictTransportSecurity is sent only when HSTS is true.
	StrictTransportSecurity string
	HSTS                    bool

	CustomHeaders map[string]string
}

// APISecurity suits a JSON and image API: nothing is framed or executed, and
// generated images may be embedded from any origin.
var APISecurity = SecurityHeadersConfig{
	ContentTypeOptions:        "nosniff",
	FrameOptions:              "DENY",
	ReferrerPolicy:            "no-referrer",
	ContentSecurityPolicy:     "default-src 'none'; frame-ancestors 'none'",
	CrossOriginResourcePolicy: "cross-origin",
	StrictTransportSecurity:   "max-age=31536000; includeSubDomains",
}

// SecurityHeaders applies APISecurity without HSTS.
func SecurityHeaders[C handler.Context]() handler.Middleware[C] {
	return SecurityHeadersWithConfig[C](APISecurity)
}

// SecurityHeadersWithConfig sets the configured headers on every response,
// error responses included.
func SecurityHeadersWithConfig[C handler.Context](cfg SecurityHeadersConfig) handler.Middleware[C] {
	headers := make(map[string]string)
	set := func(name, value string) {
		if value != "" {
			headers[name] = value
		}
	}
	set("X-Content-Type-Options", cfg.ContentTypeOptions)
	set("X-Frame-Options", cfg.FrameOptions)
	set("Referrer-Policy", cfg.ReferrerPolicy)
	set("Content-Security-Policy", cfg.ContentSecurityPolicy)
	set("Cross-Origin-Resource-Policy", cfg.CrossOriginResourcePolicy)
	if cfg.HSTS {
		set("Strict-Transport-Security", cfg.StrictTransportSecurity)
	}
	maps.Copy(headers, cfg.CustomHeaders)

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			resp := next(ctx)
			return func(w http.ResponseWriter, r *http.Request) error {
				h := w.Header()
				for name, value := range headers {
					h.Set(name, value)
				}
				return resp(w, r)
			}
		}
	}
}
