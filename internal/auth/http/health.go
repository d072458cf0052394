package http

import (
	"net/http"
	"time"

	"github.com/bychefiza/edge/pkg/httpx"
)

// HealthHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning service name, version, and the current timestamp.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	httpx.HealthResponse	"status, timestamp, service, version"
//	@Router			/health [get].
func HealthHandler(service, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, httpx.HealthResponse{
			Status:    "OK",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Service:   service,
			Version:   version,
		})
	}
}
