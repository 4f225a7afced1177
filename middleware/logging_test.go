package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/core/handler"
	"github.com/dmitrymomot/qrgen/core/logger"
	"github.com/dmitrymomot/qrgen/core/response"
	"github.com/dmitrymomot/qrgen/core/router"
	"github.com/dmitrymomot/qrgen/middleware"
)

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestLoggingLevelsByStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		resp   handler.Response
		status float64
		level  string
	}{
		{name: "ok", resp: response.String("fine"), status: 200, level: "INFO"},
		{name: "client error", resp: response.Error(response.ErrBadRequest), status: 400, level: "WARN"},
		{name: "server error", resp: response.Error(errors.New("boom")), status: 500, level: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := logger.New(logger.WithOutput(&buf), logger.WithJSONFormatter())

			r := router.New[*router.Context]()
			r.Use(middleware.LoggingWithLogger[*router.Context](log))
			r.Get("/test", func(ctx *router.Context) handler.Response { return tt.resp })

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			records := decodeRecords(t, &buf)
			require.Len(t, records, 1)
			rec := records[0]
			assert.Equal(t, "HTTP request completed", rec["msg"])
			assert.Equal(t, tt.level, rec["level"])
			assert.Equal(t, tt.status, rec["status_code"])
			assert.Equal(t, "GET", rec["method"])
			assert.Equal(t, "/test", rec["path"])
			assert.Equal(t, "203.0.113.7", rec["client_ip"])
			assert.Equal(t, "http", rec["component"])
		})
	}
}

func TestLoggingCountsBytes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithJSONFormatter())

	r := router.New[*router.Context]()
	r.Use(middleware.LoggingWithLogger[*router.Context](log))
	r.Get("/test", func(ctx *router.Context) handler.Response { return response.String("12345") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	records := decodeRecords(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, float64(5), records[0]["bytes_out"])
	assert.Equal(t, "12345", w.Body.String())
}

func TestLoggingSkip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithJSONFormatter())

	r := router.New[*router.Context]()
	r.Use(middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
		Logger: log,
		Skip:   func(ctx handler.Context) bool { return ctx.Request().URL.Path == "/metrics" },
	}))
	r.Get("/metrics", ok)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Empty(t, buf.String())
}

func TestLoggingWithRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithJSONFormatter(),
		logger.WithContextExtractors(middleware.RequestIDExtractor()),
	)

	r := router.New[*router.Context]()
	r.Use(
		middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
			Generator: func() string { return "fixed-id" },
		}),
		middleware.LoggingWithLogger[*router.Context](log),
	)
	r.Get("/test", ok)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	records := decodeRecords(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "fixed-id", records[0]["request_id"])
}
