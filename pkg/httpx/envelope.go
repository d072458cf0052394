package httpx

import (
	"fmt"
	"net/http"
)

// Envelope is the uniform JSON shape every failure path across the edge layer
// resolves to. Clients never see an unstructured fault: handlers either relay
// an upstream response verbatim or write one of these.
type Envelope struct {
	// Err is always true; the field exists so clients can branch on it.
	Err bool `json:"error"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// Status mirrors the HTTP status code in the body.
	Status int `json:"status"`

	// Stack carries a stack-like diagnostic, attached only in dev mode.
	Stack string `json:"stack,omitempty"`
}

// NewEnvelope builds an error envelope for the given status and message.
func NewEnvelope(status int, message string) *Envelope {
	return &Envelope{Err: true, Message: message, Status: status}
}

// Error implements the error interface so envelopes can travel as errors.
func (e *Envelope) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// WithStack returns a copy of the envelope carrying a diagnostic detail.
// Callers attach this only when running in dev mode.
func (e *Envelope) WithStack(detail string) *Envelope {
	cp := *e
	cp.Stack = detail
	return &cp
}

// WriteError writes the envelope to an HTTP response writer.
func (e *Envelope) WriteError(w http.ResponseWriter) {
	NoCache(w)
	WriteJSON(w, e.Status, e)
}

// Predefined envelopes for failures shared across services. Handlers with
// endpoint-specific messages build their own via NewEnvelope.
var (
	// ErrNotFound is returned when no route binding or resource matches.
	ErrNotFound = NewEnvelope(http.StatusNotFound, "Not Found")

	// ErrInvalidBody is returned when a request body is not valid JSON.
	ErrInvalidBody = NewEnvelope(http.StatusBadRequest, "Invalid request body")

	// ErrInvalidCredentials is returned on any login failure; it deliberately
	// does not distinguish unknown accounts from wrong passwords.
	ErrInvalidCredentials = NewEnvelope(http.StatusUnauthorized, "Invalid credentials")

	// ErrServerError is returned for unexpected internal faults.
	ErrServerError = NewEnvelope(http.StatusInternalServerError, "Internal Server Error")

	// ErrRateLimited is returned when a client exceeds its request window.
	ErrRateLimited = NewEnvelope(http.StatusTooManyRequests, "Too many requests, please try again later")
)
