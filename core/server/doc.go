// Package server runs an http.Handler with production timeouts and
// graceful shutdown tied to a context.
//
// Start blocks until the context is canceled, then drains in-flight
// requests within the shutdown timeout:
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
//
// Config is populated from SERVER_* environment variables via the config
// package. TLS is enabled when both SERVER_TLS_CERT_FILE and
// SERVER_TLS_KEY_FILE are set.
package server
