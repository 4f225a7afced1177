package service

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/qrgen/core/logger"
	"github.com/dmitrymomot/qrgen/internal/customization"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

// Recorder receives generation telemetry. *metrics.Metrics satisfies it.
type Recorder interface {
	ObserveGeneration(format, outcome string)
	ObserveRender(format string, elapsed time.Duration, n int)
}

// Outcome labels passed to Recorder.ObserveGeneration.
const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeGenerationError = "generation_error"
)

type nopRecorder struct{}

func (nopRecorder) ObserveGeneration(string, string)         {}
func (nopRecorder) ObserveRender(string, time.Duration, int) {}

// Result is a rendered QR code and the configuration it was rendered with.
type Result struct {
	Config customization.ResolvedConfig
	Image  []byte
}

// DataURI returns the image as a base64 data URI.
func (r Result) DataURI() string {
	return qrcode.DataURI(r.Config.ContentType, r.Image)
}

// Generator validates requests and renders them. Safe for concurrent use.
type Generator struct {
	validator  customization.Validator
	normalizer customization.Normalizer
	cache      *qrcode.Cache
	recorder   Recorder
	logger     *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithCache renders through c. Without it every request is rendered.
func WithCache(c *qrcode.Cache) Option {
	return func(g *Generator) {
		g.cache = c
	}
}

// WithRecorder reports outcomes and render timings to r. A nil r keeps the
// no-op recorder.
func WithRecorder(r Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithLogger sets the logger for render failures and debug traces.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator returns a Generator using v for validation and n for the
// flattened form and defaults.
func NewGenerator(v customization.Validator, n customization.Normalizer, opts ...Option) *Generator {
	g := &Generator{
		validator:  v,
		normalizer: n,
		recorder:   nopRecorder{},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Defaults returns the customization applied when a request has none.
func (g *Generator) Defaults() customization.Customization {
	return g.normalizer.Defaults()
}

// Resolve normalizes and validates without rendering.
func (g *Generator) Resolve(text string, in customization.Input) (customization.ResolvedConfig, error) {
	return customization.NormalizeAndValidate(text, in, g.validator, g.normalizer)
}

// Generate resolves the request and renders it. Validation failures are
// *customization.ValidationError; render failures wrap qrcode.ErrGeneration.
func (g *Generator) Generate(ctx context.Context, text string, in customization.Input) (Result, error) {
	rc, err := g.Resolve(text, in)
	if err != nil {
		g.recorder.ObserveGeneration(formatLabel(in), OutcomeValidationError)
		g.logger.DebugContext(ctx, "request rejected", logger.Error(err))
		return Result{}, err
	}
	return g.Render(ctx, rc)
}

// Render encodes an already resolved configuration.
func (g *Generator) Render(ctx context.Context, rc customization.ResolvedConfig) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	format := string(rc.Format)
	start := time.Now()

	data, err := g.cache.Generate(RenderOptions(rc), qrcode.Format(rc.Format))
	if err != nil {
		g.recorder.ObserveGeneration(format, OutcomeGenerationError)
		g.logger.ErrorContext(ctx, "qr render failed",
			logger.Error(err),
			logger.Format(format),
			logger.Size(rc.PixelSize),
		)
		return Result{}, fmt.Errorf("render %s: %w", format, err)
	}

	elapsed := time.Since(start)
	g.recorder.ObserveGeneration(format, OutcomeSuccess)
	g.recorder.ObserveRender(format, elapsed, len(data))
	g.logger.DebugContext(ctx, "qr rendered",
		logger.Format(format),
		logger.Size(rc.PixelSize),
		logger.Duration(elapsed),
	)

	return Result{Config: rc, Image: data}, nil
}

// RenderOptions maps a resolved configuration onto renderer options.
func RenderOptions(rc customization.ResolvedConfig) qrcode.Options {
	return qrcode.Options{
		Content:    rc.Text,
		Size:       int(rc.PixelSize),
		Level:      recoveryLevel(rc.ErrorCorrection),
		Foreground: rgba(rc.Foreground),
		Background: rgba(rc.Background),
		QuietZone:  int(rc.BorderWidth),
	}
}

func recoveryLevel(ec customization.ErrorCorrection) qrcode.RecoveryLevel {
	switch ec {
	case customization.ErrorCorrectionL:
		return qrcode.LevelL
	case customization.ErrorCorrectionQ:
		return qrcode.LevelQ
	case customization.ErrorCorrectionH:
		return qrcode.LevelH
	default:
		return qrcode.LevelM
	}
}

func rgba(c customization.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// formatLabel picks a metric label for a request that failed before its
// format was known to be valid.
func formatLabel(in customization.Input) string {
	switch {
	case in.Flattened != nil && in.Flattened.Format != nil:
		if f, err := customization.ParseFormat(*in.Flattened.Format); err == nil {
			return string(f)
		}
		return "unknown"
	case in.Flattened == nil && in.Structured != nil && in.Structured.Format.Valid():
		return string(in.Structured.Format)
	default:
		return string(customization.DefaultFormat)
	}
}
