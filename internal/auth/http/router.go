// Package http exposes the auth token service's HTTP surface.
package http

import (
	"log/slog"
	"net/http"

	"github.com/bychefiza/edge/internal/auth/service"
	"github.com/bychefiza/edge/pkg/httpx"
	"github.com/bychefiza/edge/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	logger       *slog.Logger

	// CredentialLimit guards login/register against credential stuffing.
	CredentialLimit httpx.RateLimitConfig

	TokenService *service.TokenService
	UserService  *service.UserService
}

func NewRouter(buildVersion string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:             http.NewServeMux(),
		buildVersion:    buildVersion,
		logger:          logger,
		CredentialLimit: httpx.DefaultLoginLimit,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recovery(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	// Credential endpoints sit behind the per-address limiter so stuffing
	// attempts are throttled before any verification work runs.
	r.Mux.Handle("POST /register",
		httpx.Chain(&RegisterHandler{UserService: r.UserService},
			httpx.RateLimitByIP(r.CredentialLimit),
		),
	)
	r.Mux.Handle("POST /login",
		httpx.Chain(&LoginHandler{TokenService: r.TokenService},
			httpx.RateLimitByIP(r.CredentialLimit),
		),
	)

	r.Mux.Handle("POST /refresh", &RefreshHandler{TokenService: r.TokenService})
	r.Mux.Handle("POST /verify", &VerifyHandler{TokenService: r.TokenService})
	r.Mux.Handle("POST /logout", http.HandlerFunc(HandleLogout))

	r.Mux.Handle("GET /health", HealthHandler("auth-service", r.buildVersion))

	// Anything else resolves to the envelope, never a bare text 404.
	r.Mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		httpx.ErrNotFound.WriteError(w)
	}))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}
