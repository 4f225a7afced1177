package api

import (
	"github.com/dmitrymomot/qrgen/internal/customization"
	"github.com/dmitrymomot/qrgen/internal/service"
)

type legacyRequest struct {
	URL string `query:"url"`
}

type legacyResponse struct {
	QRCode string `json:"qr_code"`
	Format string `json:"format"`
}

// generateRequest is the v2 body. A missing customization means defaults.
type generateRequest struct {
	URL           string                       `json:"url"`
	Customization *customization.Customization `json:"customization,omitempty"`
}

type envelope struct {
	QRCode string `json:"qr_code"`
	customization.Metadata
}

func newEnvelope(res service.Result) envelope {
	return envelope{
		QRCode:   res.DataURI(),
		Metadata: res.Config.Metadata(),
	}
}

type endpointInfo struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

type indexResponse struct {
	Status    string         `json:"status"`
	Version   string         `json:"version"`
	Endpoints []endpointInfo `json:"endpoints"`
}
