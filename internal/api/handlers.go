package api

import (
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/qrgen/core/binder"
	"github.com/dmitrymomot/qrgen/core/handler"
	"github.com/dmitrymomot/qrgen/core/logger"
	"github.com/dmitrymomot/qrgen/core/response"
	"github.com/dmitrymomot/qrgen/core/router"
	"github.com/dmitrymomot/qrgen/internal/customization"
	"github.com/dmitrymomot/qrgen/internal/service"
)

// Context is the request context used by every route.
type Context = *router.Context

// legacyImageName is the download name of the v1 image route.
const legacyImageName = "qrcode.png"

// Handlers serves the QR routes.
type Handlers struct {
	generator *service.Generator
	bindJSON  binder.Binder
	bindQuery binder.Binder
	version   string
	imageTTL  time.Duration
	logger    *slog.Logger
}

// Option configures Handlers.
type Option func(*Handlers)

// WithVersion sets the version reported by the index route.
func WithVersion(v string) Option {
	return func(h *Handlers) {
		h.version = v
	}
}

// WithMaxBodySize caps JSON request bodies.
func WithMaxBodySize(n int64) Option {
	return func(h *Handlers) {
		h.bindJSON = binder.JSON(binder.WithMaxSize(n))
	}
}

// WithImageCacheTTL sets Cache-Control on GET /image. Defaults to one hour;
// zero disables caching.
func WithImageCacheTTL(d time.Duration) Option {
	return func(h *Handlers) {
		h.imageTTL = d
	}
}

// WithLogger sets the logger for server-side failures. Defaults to a
// discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handlers) {
		if l != nil {
			h.logger = l
		}
	}
}

// New returns handlers rendering through g.
func New(g *service.Generator, opts ...Option) *Handlers {
	h := &Handlers{
		generator: g,
		bindJSON:  binder.JSON(),
		bindQuery: binder.Query(),
		version:   "dev",
		imageTTL:  time.Hour,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GenerateV1 is GET /generate: default options, PNG data URI.
func (h *Handlers) GenerateV1(ctx Context) handler.Response {
	var req legacyRequest
	if err := h.bindQuery(ctx.Request(), &req); err != nil {
		return response.Error(toHTTPError(err))
	}

	res, err := h.generator.Generate(ctx, req.URL, legacyInput(h.generator))
	if err != nil {
		return h.fail(ctx, err)
	}

	return response.JSON(legacyResponse{
		QRCode: res.DataURI(),
		Format: string(customization.FormatPNG),
	})
}

// ImageV1 is GET /image: default options, PNG download named qrcode.png.
func (h *Handlers) ImageV1(ctx Context) handler.Response {
	var req legacyRequest
	if err := h.bindQuery(ctx.Request(), &req); err != nil {
		return response.Error(toHTTPError(err))
	}

	res, err := h.generator.Generate(ctx, req.URL, legacyInput(h.generator))
	if err != nil {
		return h.fail(ctx, err)
	}

	return response.WithCache(
		response.Attachment(res.Image, legacyImageName, res.Config.ContentType),
		h.imageTTL,
	)
}

// GenerateV2 is POST /v2/generate: JSON body, JSON envelope.
func (h *Handlers) GenerateV2(ctx Context) handler.Response {
	var req generateRequest
	if err := h.bindJSON(ctx.Request(), &req); err != nil {
		return response.Error(toHTTPError(err))
	}

	res, err := h.generator.Generate(ctx, req.URL, customization.Input{Structured: req.Customization})
	if err != nil {
		return h.fail(ctx, err)
	}
	return response.JSON(newEnvelope(res))
}

// GenerateV2Query is GET /v2/generate: the flattened query form.
func (h *Handlers) GenerateV2Query(ctx Context) handler.Response {
	var (
		req       legacyRequest
		flattened customization.Flattened
	)
	if err := h.bindQuery(ctx.Request(), &req); err != nil {
		return response.Error(toHTTPError(err))
	}
	if err := h.bindQuery(ctx.Request(), &flattened); err != nil {
		return response.Error(toHTTPError(err))
	}

	res, err := h.generator.Generate(ctx, req.URL, customization.Input{Flattened: &flattened})
	if err != nil {
		return h.fail(ctx, err)
	}
	return response.JSON(newEnvelope(res))
}

// ImageV2 is POST /v2/image: JSON body, image download.
func (h *Handlers) ImageV2(ctx Context) handler.Response {
	var req generateRequest
	if err := h.bindJSON(ctx.Request(), &req); err != nil {
		return response.Error(toHTTPError(err))
	}

	res, err := h.generator.Generate(ctx, req.URL, customization.Input{Structured: req.Customization})
	if err != nil {
		return h.fail(ctx, err)
	}
	return response.Attachment(res.Image, res.Config.Filename(), res.Config.ContentType)
}

func (h *Handlers) fail(ctx Context, err error) handler.Response {
	httpErr := toHTTPError(err)
	if httpErr.Status >= 500 {
		h.logger.ErrorContext(ctx, "qr generation failed", logger.Error(err))
	}
	return response.Error(httpErr)
}

// legacyInput pins v1 routes to the defaults with PNG output, whatever the
// process-wide defaults say about format.
func legacyInput(g *service.Generator) customization.Input {
	c := g.Defaults()
	c.Format = customization.FormatPNG
	return customization.Input{Structured: &c}
}
