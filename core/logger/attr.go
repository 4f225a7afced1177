package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error logs err under "error". Nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errs under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	var as []slog.Attr
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }

// RequestID is empty for an empty id.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Method(method string) slog.Attr { return slog.String("method", method) }
func Path(path string) slog.Attr     { return slog.String("path", path) }
func StatusCode(code int) slog.Attr  { return slog.Int("status_code", code) }
func ClientIP(ip string) slog.Attr   { return slog.String("client_ip", ip) }
func UserAgent(ua string) slog.Attr  { return slog.String("user_agent", ua) }
func BytesOut(n int64) slog.Attr     { return slog.Int64("bytes_out", n) }

func Component(name string) slog.Attr { return slog.String("component", name) }
func Version(v string) slog.Attr      { return slog.String("version", v) }

// Format tags the output encoding of a generated image.
func Format(f string) slog.Attr { return slog.String("format", f) }

// Size tags a pixel dimension.
func Size(px uint32) slog.Attr { return slog.Uint64("size", uint64(px)) }

// Key logs value under key. Nil yields an empty Attr.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}
