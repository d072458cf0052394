package http

import (
	"net/http"

	"github.com/bychefiza/edge/internal/gateway/route"
	"github.com/bychefiza/edge/pkg/httpx"
)

type manifestResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// ManifestHandler serves GET / with the gateway's capability manifest: its
// name, version, and the prefix bound to each upstream service.
func ManifestHandler(version string, table *route.Table) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		endpoints := make(map[string]string)
		for _, b := range table.Bindings() {
			endpoints[b.Name] = b.Prefix
		}

		httpx.WriteJSON(w, http.StatusOK, manifestResponse{
			Name:      "BYCHEFIZA API Gateway",
			Version:   version,
			Endpoints: endpoints,
		})
	})
}
