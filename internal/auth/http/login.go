package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bychefiza/edge/internal/auth/domain"
	"github.com/bychefiza/edge/internal/auth/service"
	"github.com/bychefiza/edge/pkg/httpx"
	"github.com/bychefiza/edge/pkg/slogx"
)

// LoginHandler serves POST /login.
type LoginHandler struct {
	TokenService *service.TokenService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success      bool        `json:"success"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
	User         domain.User `json:"user"`
}

// ServeHTTP godoc
//
//	@Summary		Authenticate a user
//	@Description	Verifies the password against the stored credential and issues an access/refresh token pair.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"email, password"
//	@Success		200		{object}	loginResponse	"success, token, refreshToken, user"
//	@Failure		400		{object}	httpx.Envelope	"validation failure"
//	@Failure		401		{object}	httpx.Envelope	"invalid credentials"
//	@Header			200		{string}	Cache-Control	"no-store"
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrInvalidBody.WriteError(w)
		return
	}

	// Reject malformed input before any lookup or hashing work.
	if err := domain.ValidateLogin(req.Email, req.Password); err != nil {
		if env := validationEnvelope(err); env != nil {
			env.WriteError(w)
			return
		}
		httpx.ErrInvalidBody.WriteError(w)
		return
	}

	pair, user, err := h.TokenService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		httpx.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Success:      true,
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         *user,
	})
}
