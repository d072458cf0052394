package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/bychefiza/edge/internal/auth/service"
	"github.com/bychefiza/edge/pkg/httpx"
	"github.com/bychefiza/edge/pkg/slogx"
)

// RefreshHandler serves POST /refresh.
type RefreshHandler struct {
	TokenService *service.TokenService
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// ServeHTTP godoc
//
//	@Summary		Rotate a refresh token into a new access token
//	@Description	A missing token is a bad request; a token that fails verification is a bad credential.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		refreshRequest	true	"refreshToken"
//	@Success		200		{object}	refreshResponse	"success, token"
//	@Failure		400		{object}	httpx.Envelope	"refresh token required"
//	@Failure		401		{object}	httpx.Envelope	"invalid refresh token"
//	@Header			200		{string}	Cache-Control	"no-store"
//	@Router			/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrInvalidBody.WriteError(w)
		return
	}

	// Input validation first: an absent token is a malformed request (400),
	// distinct from a present token that fails verification (401).
	if strings.TrimSpace(req.RefreshToken) == "" {
		httpx.NewEnvelope(http.StatusBadRequest, "Refresh token required").WriteError(w)
		return
	}

	token, err := h.TokenService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) {
			httpx.NewEnvelope(http.StatusUnauthorized, "Invalid refresh token").WriteError(w)
			return
		}
		log.Error("refresh failed", "err", err)
		httpx.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, refreshResponse{Success: true, Token: token})
}
