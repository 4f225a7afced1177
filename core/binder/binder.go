package binder

import "net/http"

// Binder decodes part of r into v.
type Binder func(r *http.Request, v any) error
