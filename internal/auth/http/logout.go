package http

import (
	"net/http"

	"github.com/bychefiza/edge/pkg/httpx"
)

type logoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HandleLogout serves POST /logout.
//
// Tokens are stateless and not tracked server-side, so logout is an
// acknowledgment: clients drop their copies and the tokens age out. True
// invalidation needs a revocation-list collaborator in front of verify;
// that is the extension point if it's ever required.
//
//	@Summary	Log out
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	logoutResponse	"success, message"
//	@Router		/logout [post].
func HandleLogout(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, logoutResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}
