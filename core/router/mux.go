package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/dmitrymomot/qrgen/core/handler"
)

const anyMethod = "*"

var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
	http.MethodConnect: true,
	http.MethodTrace:   true,
}

// endpoint holds the handlers registered for one pattern.
type endpoint[C handler.Context] struct {
	handlers map[string]handler.HandlerFunc[C]
}

func (e *endpoint[C]) lookup(method string) (handler.HandlerFunc[C], bool) {
	if h, ok := e.handlers[method]; ok {
		return h, true
	}
	if h, ok := e.handlers[anyMethod]; ok {
		return h, true
	}
	if method == http.MethodHead {
		h, ok := e.handlers[http.MethodGet]
		return h, ok
	}
	return nil, false
}

func (e *endpoint[C]) allow() string {
	methods := make([]string, 0, len(e.handlers)+1)
	for m := range e.handlers {
		methods = append(methods, m)
	}
	if _, ok := e.handlers[http.MethodGet]; ok {
		if _, ok := e.handlers[http.MethodHead]; !ok {
			methods = append(methods, http.MethodHead)
		}
	}
	slices.Sort(methods)
	return strings.Join(methods, ", ")
}

// mux implements Router. Groups share the root's ServeMux and endpoint
// table; only the root holds them.
type mux[C handler.Context] struct {
	root        *mux[C]
	parent      *mux[C]
	prefix      string
	middlewares []handler.Middleware[C]
	sealed      bool

	std          *http.ServeMux
	endpoints    map[string]*endpoint[C]
	routes       []Route
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		std:          http.NewServeMux(),
		endpoints:    make(map[string]*endpoint[C]),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	m.root = m

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	m.std.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		m.serve(newResponseWriter(w), r, notFound[C])
	})

	return m
}

// ServeHTTP dispatches through the shared ServeMux.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.root.std.ServeHTTP(newResponseWriter(w), r)
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, h)
}

func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, h)
}

func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, h)
}

func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPatch, pattern, h)
}

func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, h)
}

func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	m.handle(anyMethod, pattern, h)
}

func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}
	seen := make(map[string]bool, len(methods))
	for _, method := range methods {
		method = strings.ToUpper(method)
		if !knownMethods[method] {
			panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
		}
		if seen[method] {
			continue
		}
		seen[method] = true
		m.handle(method, pattern, h)
	}
}

// Use appends middleware. It panics once routes have been registered on m.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.sealed {
		panic("router: all middlewares must be defined before routes")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	return &mux[C]{
		root:        m.root,
		parent:      m,
		prefix:      m.prefix,
		middlewares: middlewares,
	}
}

func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	g := m.With()
	if fn != nil {
		fn(g)
	}
	return g
}

func (m *mux[C]) Route(prefix string, fn func(r Router[C])) Router[C] {
	if fn == nil {
		panic(fmt.Errorf("%w on '%s'", ErrNilSubrouter, prefix))
	}
	if prefix == "" || prefix[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, prefix))
	}
	sub := &mux[C]{
		root:   m.root,
		parent: m,
		prefix: m.prefix + strings.TrimSuffix(prefix, "/"),
	}
	fn(sub)
	return sub
}

func (m *mux[C]) Routes() []Route {
	return slices.Clone(m.root.routes)
}

func (m *mux[C]) handle(method, pattern string, h handler.HandlerFunc[C]) {
	if pattern == "" || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}
	m.sealed = true

	full := m.prefix + pattern
	if m.prefix != "" && pattern == "/" {
		full = m.prefix
	}

	// Group middlewares are fixed at registration; root middlewares are
	// applied per request.
	var stack []handler.Middleware[C]
	for g := m; g != nil && g != m.root; g = g.parent {
		stack = append(slices.Clone(g.middlewares), stack...)
	}
	if len(stack) > 0 {
		h = chain(stack, h)
	}

	m.root.register(method, full, h)
}

func (m *mux[C]) register(method, pattern string, h handler.HandlerFunc[C]) {
	ep, ok := m.endpoints[pattern]
	if !ok {
		ep = &endpoint[C]{handlers: make(map[string]handler.HandlerFunc[C])}
		m.endpoints[pattern] = ep
		m.std.Handle(servePattern(pattern), m.dispatch(ep))
	}
	if _, dup := ep.handlers[method]; dup {
		panic(fmt.Errorf("%w: %s %s registered twice", ErrInvalidPattern, method, pattern))
	}
	ep.handlers[method] = h
	m.routes = append(m.routes, Route{Method: method, Pattern: pattern})
}

func (m *mux[C]) dispatch(ep *endpoint[C]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := newResponseWriter(w)
		h, ok := ep.lookup(r.Method)
		if !ok {
			// Root middlewares still run so that CORS can answer preflights.
			h = methodNotAllowed[C](ep.allow())
		}
		m.serve(ww, r, h)
	})
}

func (m *mux[C]) serve(ww *responseWriter, r *http.Request, h handler.HandlerFunc[C]) {
	ctx := m.newContext(ww, r)

	defer func() {
		if p := recover(); p != nil {
			perr := &panicError{value: p, stack: debug.Stack()}
			if ww.Written() {
				m.logger.Error("panic after response written",
					"value", perr.value,
					"stack", string(perr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
				return
			}
			m.errorHandler(ctx, perr)
		}
	}()

	if len(m.middlewares) > 0 {
		h = chain(m.middlewares, h)
	}

	resp := h(ctx)
	if resp == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}
	if err := resp(ww, ctx.Request()); err != nil {
		m.errorHandler(ctx, err)
	}
}

func notFound[C handler.Context](C) handler.Response {
	return func(http.ResponseWriter, *http.Request) error { return ErrNotFound }
}

func methodNotAllowed[C handler.Context](allow string) handler.HandlerFunc[C] {
	return func(C) handler.Response {
		return func(w http.ResponseWriter, _ *http.Request) error {
			w.Header().Set("Allow", allow)
			return ErrMethodNotAllowed
		}
	}
}

// servePattern makes trailing-slash patterns exact, since ServeMux treats
// them as subtree matches.
func servePattern(pattern string) string {
	if strings.HasSuffix(pattern, "/") {
		return pattern + "{$}"
	}
	return pattern
}
