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

// RegisterHandler serves POST /register.
type RegisterHandler struct {
	UserService *service.UserService
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type registerResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	User    registeredUser `json:"user"`
}

// registeredUser echoes identity only; no id, never the hash.
type registeredUser struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// ServeHTTP godoc
//
//	@Summary		Register a new user
//	@Description	Validates input, hashes the password, and hands the credential to the store collaborator.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		registerRequest		true	"email, password (min 8), username (min 3)"
//	@Success		201		{object}	registerResponse	"success, message, user"
//	@Failure		400		{object}	httpx.Envelope		"validation failure"
//	@Failure		409		{object}	httpx.Envelope		"email already registered"
//	@Router			/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrInvalidBody.WriteError(w)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		if env := validationEnvelope(err); env != nil {
			env.WriteError(w)
			return
		}
		if errors.Is(err, service.ErrEmailTaken) {
			httpx.NewEnvelope(http.StatusConflict, "Email already registered").WriteError(w)
			return
		}
		log.Error("registration failed", "err", err)
		httpx.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, registerResponse{
		Success: true,
		Message: "User registered successfully",
		User:    registeredUser{Email: user.Email, Username: user.Username},
	})
}

// validationEnvelope maps domain validation failures to 400 envelopes.
// Returns nil for anything that isn't a validation error.
func validationEnvelope(err error) *httpx.Envelope {
	switch {
	case errors.Is(err, domain.ErrEmailRequired), errors.Is(err, domain.ErrEmailInvalid):
		return httpx.NewEnvelope(http.StatusBadRequest, "A valid email address is required")
	case errors.Is(err, domain.ErrPasswordRequired):
		return httpx.NewEnvelope(http.StatusBadRequest, "Password is required")
	case errors.Is(err, domain.ErrPasswordTooShort):
		return httpx.NewEnvelope(http.StatusBadRequest, "Password must be at least 8 characters")
	case errors.Is(err, domain.ErrUsernameTooShort):
		return httpx.NewEnvelope(http.StatusBadRequest, "Username must be at least 3 characters")
	default:
		return nil
	}
}
