package response

import (
	"net/http"

	"github.com/dmitrymomot/qrgen/core/handler"
)

// Error returns a Response that fails with err, handing it to the router's
// error handler.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
