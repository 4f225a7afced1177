package router

import (
	"context"
	"net/http"
	"time"
)

// Context is the default handler.Context. Its context.Context methods
// delegate to the request context.
type Context struct {
	w http.ResponseWriter
	r *http.Request
}

// NewContext builds a Context for w and r. Custom context types can embed
// it and build it from their factory.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{w: w, r: r}
}

func (c *Context) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *Context) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *Context) Err() error                  { return c.r.Context().Err() }
func (c *Context) Value(key any) any           { return c.r.Context().Value(key) }

// Request returns the current request, including values set with SetValue.
func (c *Context) Request() *http.Request { return c.r }

// ResponseWriter returns the writer for the current request.
func (c *Context) ResponseWriter() http.ResponseWriter { return c.w }

// Param returns the path wildcard value for key.
func (c *Context) Param(key string) string {
	return c.r.PathValue(key)
}

// SetValue attaches val to the request context under key.
func (c *Context) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}
