package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bychefiza/edge/internal/gateway/route"
	"github.com/bychefiza/edge/pkg/httpx"
	"github.com/bychefiza/edge/pkg/slogx"
)

// hopByHopHeaders are connection-scoped and must not be forwarded.
var hopByHopHeaders = []string{
	"Connection",
	"Proxy-Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// ProxyHandler forwards requests to the upstream resolved from the route
// table. The matched prefix is stripped; method, headers, body, and the raw
// query travel unchanged, and the upstream response is relayed verbatim.
type ProxyHandler struct {
	Table   *route.Table
	Client  *http.Client
	DevMode bool
}

func (h *ProxyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	binding, rest, ok := h.Table.Match(r.URL.Path)
	if !ok {
		httpx.ErrNotFound.WriteError(w)
		return
	}

	target := *binding.Upstream
	target.Path = joinPath(target.Path, rest)
	target.RawQuery = r.URL.RawQuery

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target.String(), r.Body)
	if err != nil {
		log.Error("proxy request build failed", "upstream", binding.Name, "err", err)
		httpx.ErrServerError.WriteError(w)
		return
	}
	copyHeaders(req.Header, r.Header)

	resp, err := h.Client.Do(req)
	if err != nil {
		h.writeTransportError(r.Context(), w, log, binding.Name, err)
		return
	}
	defer resp.Body.Close()

	copyHeaders(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		// Headers are gone; all we can do is note the truncated relay.
		log.Warn("proxy response relay interrupted", "upstream", binding.Name, "err", err)
	}
}

// writeTransportError maps an outbound failure to a gateway envelope. A
// timeout is the upstream's fault (504); a torn connection from the client
// side gets no response at all.
func (h *ProxyHandler) writeTransportError(ctx context.Context, w http.ResponseWriter, log *slog.Logger, upstream string, err error) {
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		// Client went away; nobody is listening for an envelope.
		return
	}

	env := httpx.NewEnvelope(http.StatusBadGateway, "Bad Gateway")

	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		env = httpx.NewEnvelope(http.StatusGatewayTimeout, "Gateway Timeout")
	}

	log.Error("proxy forward failed", "upstream", upstream, "status", env.Status, "err", err)

	if h.DevMode {
		env = env.WithStack(err.Error())
	}
	env.WriteError(w)
}

func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		for _, v := range values {
			dst.Add(key, v)
		}
	}
	for _, key := range hopByHopHeaders {
		dst.Del(key)
	}
}

// joinPath appends rest to base without doubling the separator. rest always
// starts with "/" (Match guarantees it).
func joinPath(base, rest string) string {
	if base == "" || base == "/" {
		return rest
	}
	if base[len(base)-1] == '/' {
		return base[:len(base)-1] + rest
	}
	return base + rest
}
