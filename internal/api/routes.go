package api

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrymomot/qrgen/core/handler"
	"github.com/dmitrymomot/qrgen/core/health"
	"github.com/dmitrymomot/qrgen/core/response"
	"github.com/dmitrymomot/qrgen/core/router"
	"github.com/dmitrymomot/qrgen/internal/metrics"
	"github.com/dmitrymomot/qrgen/middleware"
)

// RouterConfig holds the cross-cutting pieces NewRouter wires around the handlers.
type RouterConfig struct {
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	CORSOrigins []string
	BodyLimit   int64
	Readiness   []health.Check
	// HSTS adds Strict-Transport-Security; enable behind TLS only.
	HSTS        bool
}

var descriptions = map[string]string{
	"GET /":             "Service index and health summary",
	"GET /health/live":  "Liveness probe",
	"GET /health/ready": "Readiness probe",
	"GET /metrics":      "Prometheus metrics",
	"GET /generate":     "V1: Generate QR code as JSON with base64 image",
	"GET /image":        "V1: Generate QR code as downloadable PNG image",
	"POST /v2/generate": "V2: Generate customized QR code as JSON with base64 image",
	"GET /v2/generate":  "V2: Generate customized QR code via query parameters",
	"POST /v2/image":    "V2: Generate customized QR code as downloadable image",
}

// NewRouter builds the service router: middleware stack, probes, metrics and
// the QR routes.
func NewRouter(h *Handlers, cfg RouterConfig) router.Router[Context] {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	r := router.New[Context](
		router.WithErrorHandler(response.JSONErrorHandler[Context]),
		router.WithLogger[Context](log),
	)

	r.Use(middleware.RequestID[Context]())
	if cfg.Metrics != nil {
		r.Use(metrics.Middleware[Context](cfg.Metrics))
	}
	r.Use(
		middleware.LoggingWithConfig[Context](middleware.LoggingConfig{
			Logger: log,
			Skip:   isProbe,
		}),
		middleware.CORSWithConfig[Context](middleware.CORSConfig{
			AllowOrigins:  cfg.CORSOrigins,
			ExposeHeaders: []string{"Content-Disposition", "X-Request-ID"},
		}),
		middleware.BodyLimitWithSize[Context](cfg.BodyLimit),
		middleware.SecurityHeadersWithConfig[Context](securityHeaders(cfg.HSTS)),
	)

	r.Get("/", h.Index(r))
	r.Get("/health/live", health.Liveness[Context])
	r.Get("/health/ready", health.Readiness[Context](log, cfg.Readiness...))
	if cfg.Metrics != nil {
		r.Get("/metrics", wrapHTTP(cfg.Metrics.Handler()))
	}

	h.Register(r)
	return r
}

// Register adds the QR routes to r.
func (h *Handlers) Register(r router.Router[Context]) {
	r.Get("/generate", h.GenerateV1)
	r.Get("/image", h.ImageV1)

	r.Route("/v2", func(r router.Router[Context]) {
		r.Post("/generate", h.GenerateV2)
		r.Get("/generate", h.GenerateV2Query)
		r.Post("/image", h.ImageV2)
	})
}

// Index lists the routes registered on routes at request time.
func (h *Handlers) Index(routes router.Routes) handler.HandlerFunc[Context] {
	return func(ctx Context) handler.Response {
		registered := routes.Routes()
		endpoints := make([]endpointInfo, 0, len(registered))
		for _, rt := range registered {
			endpoints = append(endpoints, endpointInfo{
				Path:        rt.Pattern,
				Method:      rt.Method,
				Description: descriptions[rt.Method+" "+rt.Pattern],
			})
		}
		slices.SortStableFunc(endpoints, func(a, b endpointInfo) int {
			return strings.Compare(a.Path, b.Path)
		})

		return response.JSON(indexResponse{
			Status:    "healthy",
			Version:   h.version,
			Endpoints: endpoints,
		})
	}
}

func securityHeaders(hsts bool) middleware.SecurityHeadersConfig {
	cfg := middleware.APISecurity
	cfg.HSTS = hsts
	return cfg
}

func isProbe(ctx handler.Context) bool {
	p := ctx.Request().URL.Path
	return strings.HasPrefix(p, "/health/") || p == "/metrics"
}

// wrapHTTP mounts a plain http.Handler.
func wrapHTTP(next http.Handler) handler.HandlerFunc[Context] {
	return func(ctx Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			next.ServeHTTP(w, r)
			return nil
		}
	}
}
