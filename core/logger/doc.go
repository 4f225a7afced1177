// Package logger builds log/slog loggers and provides attribute helpers.
//
//	log := logger.New(
//		logger.WithProduction("qrgen"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//		logger.WithContextExtractors(requestIDFromContext),
//	)
//	log.InfoContext(ctx, "qr code generated", logger.Component("api"), logger.Duration(d))
//
// Development loggers write text at debug level; production loggers write
// JSON at info level. Both tag every record with the service name.
// Context extractors add request-scoped attributes to records logged with a
// *Context method.
//
// Attribute helpers return an empty slog.Attr for nil or empty input, which
// slog drops, so callers need no nil checks:
//
//	log.Error("render failed", logger.Error(err))
package logger
