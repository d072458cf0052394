package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bychefiza/edge/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeWriteError(t *testing.T) {
	t.Run("writes uniform shape", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.ErrNotFound.WriteError(rec)

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, true, body["error"])
		require.Equal(t, "Not Found", body["message"])
		require.Equal(t, float64(http.StatusNotFound), body["status"])
		require.NotContains(t, body, "stack")
	})

	t.Run("WithStack attaches diagnostic without mutating original", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.ErrServerError.WithStack("dial tcp: connection refused").WriteError(rec)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "dial tcp: connection refused", body["stack"])

		// The shared instance stays clean for the next caller.
		require.Empty(t, httpx.ErrServerError.Stack)
	})
}

func TestEnvelopeError(t *testing.T) {
	e := httpx.NewEnvelope(http.StatusBadGateway, "Upstream service unavailable")
	require.EqualError(t, e, "502: Upstream service unavailable")
}

func TestChain(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("outer"), mw("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestRecovery(t *testing.T) {
	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}), httpx.Recovery())

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, true, body["error"])
	require.Equal(t, "Internal Server Error", body["message"])
}
