package binder

import "net/http"

// Query returns a binder for URL query parameters.
//
// Fields bind by their `query` tag, or by lowercased field name when
// untagged; `query:"-"` skips a field. Scalars, pointers to scalars and
// slices (repeated or comma separated) are supported. Absent parameters
// leave fields untouched.
func Query() Binder {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
