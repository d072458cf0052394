package http

import (
	"net/http"
	"time"

	"github.com/bychefiza/edge/pkg/httpx"
)

// HealthHandler serves GET /health as a liveness probe for the gateway
// process itself. It says nothing about upstream health.
func HealthHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, httpx.HealthResponse{
			Status:    "OK",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Service:   "api-gateway",
			Version:   version,
		})
	}
}
