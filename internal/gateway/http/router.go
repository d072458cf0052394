// Package http exposes the gateway's HTTP surface.
package http

import (
	"log/slog"
	"net/http"

	"github.com/bychefiza/edge/internal/gateway/route"
	"github.com/bychefiza/edge/pkg/httpx"
	"github.com/bychefiza/edge/pkg/slogx"
)

// Router holds shared dependencies for the gateway handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	logger       *slog.Logger

	// Table resolves inbound paths to upstream services.
	Table *route.Table
	// Client is the outbound HTTP client. Its Timeout bounds every forward.
	Client *http.Client
	// DevMode attaches diagnostic detail to transport failure envelopes.
	DevMode bool
}

func NewRouter(buildVersion string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recovery(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.Mux.Handle("GET /{$}", ManifestHandler(r.buildVersion, r.Table))
	r.Mux.Handle("GET /health", HealthHandler(r.buildVersion))

	// Everything else is a candidate for forwarding. The proxy writes the
	// 404 envelope itself when no prefix matches.
	r.Mux.Handle("/", &ProxyHandler{
		Table:   r.Table,
		Client:  r.Client,
		DevMode: r.DevMode,
	})
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}
