package http

import (
	"net/http"
	"strings"

	"github.com/bychefiza/edge/internal/auth/service"
	"github.com/bychefiza/edge/pkg/httpx"
)

// VerifyHandler serves POST /verify.
type VerifyHandler struct {
	TokenService *service.TokenService
}

type verifyResponse struct {
	Success bool   `json:"success"`
	Valid   bool   `json:"valid"`
	UserID  string `json:"userId"`
}

// verifyErrorResponse is the error envelope extended with the valid flag, so
// callers can branch on valid without inspecting the status code.
type verifyErrorResponse struct {
	Err     bool   `json:"error"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ServeHTTP godoc
//
//	@Summary		Verify an access token
//	@Description	Checks signature and expiry of the bearer token. A pure query: no side effects.
//	@Tags			Auth
//	@Produce		json
//	@Param			Authorization	header		string			true	"Bearer access token"
//	@Success		200				{object}	verifyResponse	"success, valid, userId"
//	@Failure		401				{object}	verifyErrorResponse
//	@Router			/verify [post].
func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		writeVerifyError(w, "No token provided")
		return
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

	claims, err := h.TokenService.Verify(r.Context(), raw)
	if err != nil {
		writeVerifyError(w, "Invalid token")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, verifyResponse{
		Success: true,
		Valid:   true,
		UserID:  claims.Subject,
	})
}

func writeVerifyError(w http.ResponseWriter, message string) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusUnauthorized, verifyErrorResponse{
		Err:     true,
		Valid:   false,
		Message: message,
		Status:  http.StatusUnauthorized,
	})
}
