package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/qrgen/core/config"
	"github.com/dmitrymomot/qrgen/core/logger"
	"github.com/dmitrymomot/qrgen/core/server"
	"github.com/dmitrymomot/qrgen/internal/customization"
	"github.com/dmitrymomot/qrgen/internal/metrics"
	"github.com/dmitrymomot/qrgen/internal/service"
	"github.com/dmitrymomot/qrgen/middleware"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

const serviceName = "qrgen"

// appConfig is the process configuration, read from the environment and an
// optional .env file.
type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	MaxURLLength      int    `env:"MAX_URL_LENGTH" envDefault:"2048"`
	DefaultForeground string `env:"QR_DEFAULT_FOREGROUND" envDefault:"#000000"`
	DefaultBackground string `env:"QR_DEFAULT_BACKGROUND" envDefault:"#FFFFFF"`
	CacheSize         int    `env:"QR_CACHE_SIZE" envDefault:"256"`

	CORSAllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
	BodyLimit        int64         `env:"BODY_LIMIT" envDefault:"65536"`
	ImageCacheTTL    time.Duration `env:"IMAGE_CACHE_TTL" envDefault:"1h"`

	Server server.Config
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return appConfig{}, err
	}
	if err := cfg.validate(); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}

// validate fails fast on defaults that would reject every request.
func (c appConfig) validate() error {
	if _, err := customization.NewColors(c.DefaultForeground, c.DefaultBackground); err != nil {
		return fmt.Errorf("default colors: %w", err)
	}
	if c.MaxURLLength <= 0 {
		return fmt.Errorf("MAX_URL_LENGTH must be positive, got %d", c.MaxURLLength)
	}
	if c.BodyLimit <= 0 {
		return fmt.Errorf("BODY_LIMIT must be positive, got %d", c.BodyLimit)
	}
	return nil
}

func (c appConfig) production() bool {
	return c.Env == "production"
}

func (c appConfig) logger(w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithLevel(logger.ParseLevel(c.LogLevel)),
		logger.WithAttr(logger.Version(version)),
		logger.WithContextExtractors(middleware.RequestIDExtractor()),
	}
	if c.production() {
		opts = append([]logger.Option{logger.WithProduction(serviceName)}, opts...)
	} else {
		opts = append([]logger.Option{logger.WithDevelopment(serviceName)}, opts...)
	}
	return logger.New(opts...)
}

// generator builds the shared render pipeline. m may be nil.
func (c appConfig) generator(log *slog.Logger, m *metrics.Metrics) (*service.Generator, error) {
	opts := []service.Option{service.WithLogger(log)}

	var hook func(bool)
	if m != nil {
		hook = m.CacheLookup
		opts = append(opts, service.WithRecorder(m))
	}
	if c.CacheSize > 0 {
		cacheOpts := []qrcode.CacheOption{}
		if hook != nil {
			cacheOpts = append(cacheOpts, qrcode.WithLookupHook(hook))
		}
		cache, err := qrcode.NewCache(c.CacheSize, cacheOpts...)
		if err != nil {
			return nil, fmt.Errorf("qr cache: %w", err)
		}
		opts = append(opts, service.WithCache(cache))
	}

	return service.NewGenerator(
		customization.NewValidator(c.MaxURLLength),
		customization.NewNormalizer(customization.Defaults{
			Foreground: c.DefaultForeground,
			Background: c.DefaultBackground,
		}),
		opts...,
	), nil
}
