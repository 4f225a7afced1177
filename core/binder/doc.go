// Package binder decodes request data into structs.
//
// JSON reads an application/json body with a size limit, rejects unknown
// fields and trailing data, and strips NUL bytes and invalid UTF-8 from every
// string it sets. Query maps URL query parameters onto fields by their
// `query` tag; pointer fields stay nil when the parameter is absent, which
// lets callers tell "not supplied" from "empty".
//
//	type request struct {
//		URL  string  `json:"url"`
//		Size *string `query:"size"`
//	}
//
//	var req request
//	if err := binder.JSON()(r, &req); err != nil {
//		return response.Error(err)
//	}
//
// Newlines are preserved so that content rules can reject them explicitly.
// Failures wrap one of the package's sentinel errors.
package binder
