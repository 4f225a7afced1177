package response

import (
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrgen/core/handler"
)

// Attachment serves in-memory data as a download named filename. An empty
// contentType is derived from the extension.
func Attachment(data []byte, filename, contentType string) handler.Response {
	return disposition("attachment", data, filename, contentType)
}

// Inline serves in-memory data for display in the browser, with filename as
// the suggested save name.
func Inline(data []byte, filename, contentType string) handler.Response {
	return disposition("inline", data, filename, contentType)
}

var filenameReplacer = strings.NewReplacer("\n", "", "\r", "", `"`, "'")

func disposition(kind string, data []byte, filename, contentType string) handler.Response {
	name := filenameReplacer.Replace(filename)
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(name))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
	}

	return func(w http.ResponseWriter, r *http.Request) error {
		h := w.Header()
		h.Set("Content-Disposition", fmt.Sprintf(`%s; filename="%s"`, kind, name))
		h.Set("Content-Type", contentType)
		h.Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return nil
		}
		_, err := w.Write(data)
		return err
	}
}
