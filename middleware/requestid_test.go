package middleware_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/core/handler"
	"github.com/dmitrymomot/qrgen/core/logger"
	"github.com/dmitrymomot/qrgen/core/router"
	"github.com/dmitrymomot/qrgen/middleware"
)

func ok(ctx *router.Context) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusOK)
		return nil
	}
}

func TestRequestIDDefaultConfiguration(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Use(middleware.RequestID[*router.Context]())

	var capturedID string
	r.Get("/test", func(ctx *router.Context) handler.Response {
		id, found := middleware.GetRequestID(ctx)
		assert.True(t, found)
		capturedID = id
		return ok(ctx)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, capturedID, w.Header().Get("X-Request-ID"))
	_, err := uuid.Parse(capturedID)
	assert.NoError(t, err)
}

func TestRequestIDUseExisting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "well formed", incoming: "abc-123.def_4", reused: true},
		{name: "with spaces", incoming: "abc 123", reused: false},
		{name: "too long", incoming: strings.Repeat("a", 129), reused: false},
		{name: "empty", incoming: "", reused: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := router.New[*router.Context]()
			r.Use(middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
				UseExisting: true,
				Generator:   func() string { return "generated" },
			}))
			r.Get("/test", ok)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("X-Request-ID", tt.incoming)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if tt.reused {
				assert.Equal(t, tt.incoming, w.Header().Get("X-Request-ID"))
			} else {
				assert.Equal(t, "generated", w.Header().Get("X-Request-ID"))
			}
		})
	}
}

func TestRequestIDSkip(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Use(middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
		Skip: func(ctx handler.Context) bool { return ctx.Request().URL.Path == "/health/live" },
	}))
	r.Get("/health/live", ok)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Empty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithJSONFormatter(),
		logger.WithContextExtractors(middleware.RequestIDExtractor()),
	)

	r := router.New[*router.Context]()
	r.Use(middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
		Generator: func() string { return "req-42" },
	}))
	r.Get("/test", func(ctx *router.Context) handler.Response {
		log.InfoContext(ctx, "handled")
		return ok(ctx)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)

	buf.Reset()
	log.InfoContext(context.Background(), "outside")
	assert.NotContains(t, buf.String(), "request_id")
}
