package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/qrgen/core/health"
	"github.com/dmitrymomot/qrgen/core/logger"
	"github.com/dmitrymomot/qrgen/core/server"
	"github.com/dmitrymomot/qrgen/internal/api"
	"github.com/dmitrymomot/qrgen/internal/customization"
	"github.com/dmitrymomot/qrgen/internal/metrics"
	"github.com/dmitrymomot/qrgen/internal/service"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

// readinessProbeText is rendered by the readiness check to prove the encoder
// works end to end.
const readinessProbeText = "https://example.com/ready"

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the QR code HTTP API.

Configuration is read from the environment (and a .env file when present).
SERVER_ADDR sets the listen address; --addr overrides it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides SERVER_ADDR")
	return cmd
}

func serve(ctx context.Context, cmd *cobra.Command, cfg appConfig) error {
	log := cfg.logger(cmd.OutOrStdout())
	m := metrics.New()

	gen, err := cfg.generator(log, m)
	if err != nil {
		return err
	}

	h := api.New(gen,
		api.WithVersion(version),
		api.WithLogger(log),
		api.WithMaxBodySize(cfg.BodyLimit),
		api.WithImageCacheTTL(cfg.ImageCacheTTL),
	)
	r := api.NewRouter(h, api.RouterConfig{
		Logger:      log,
		Metrics:     m,
		CORSOrigins: cfg.CORSAllowOrigins,
		BodyLimit:   cfg.BodyLimit,
		Readiness:   []health.Check{renderCheck(gen)},
		HSTS:        cfg.production() && cfg.Server.TLSCertFile != "",
	})

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		return fmt.Errorf("configure server: %w", err)
	}

	log.InfoContext(ctx, "starting qrgen",
		slog.String("addr", cfg.Server.Addr),
		slog.Int("max_url_length", cfg.MaxURLLength),
		slog.Int("cache_size", cfg.CacheSize),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(ctx, r))

	if err := g.Wait(); err != nil {
		log.Error("qrgen stopped", logger.Error(err))
		return err
	}
	log.Info("qrgen stopped")
	return nil
}

// renderCheck reports ready when a small PNG encodes. It resolves through
// gen but encodes directly, so every poll exercises the encoder rather than
// the render cache and leaves the generation metrics untouched.
func renderCheck(gen *service.Generator) health.Check {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		defaults := gen.Defaults()
		defaults.Format = customization.FormatPNG
		defaults.Size = customization.SizeSmall
		rc, err := gen.Resolve(readinessProbeText, customization.Input{Structured: &defaults})
		if err != nil {
			return err
		}
		_, err = qrcode.PNG(service.RenderOptions(rc))
		return err
	}
}
