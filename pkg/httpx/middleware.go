// Package httpx carries the HTTP plumbing shared by the gateway and the auth
// service: the middleware chain, the uniform error envelope, JSON response
// helpers, and the per-client rate limiter.
package httpx

import (
	"net/http"

	"github.com/bychefiza/edge/pkg/slogx"
)

// Middleware wraps an http.Handler with additional behaviour.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares to h so the first middleware listed is the
// outermost on the request path.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Recovery converts handler panics into a 500 envelope response instead of
// letting the server drop the connection.
func Recovery() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slogx.FromContext(r.Context()).Error("panic recovered", "panic", rec)
					ErrServerError.WriteError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
