// Package store defines the narrow interface the auth service uses to reach
// its credential collaborator. The service itself is stateless: credential
// records live behind this boundary, supplied per-request.
package store

import (
	"context"
	"errors"

	"github.com/bychefiza/edge/internal/auth/domain"
)

var (
	// ErrNotFound is returned when no credential matches the lookup.
	ErrNotFound = errors.New("store: not found")

	// ErrDuplicate is returned when inserting a credential whose email is
	// already registered.
	ErrDuplicate = errors.New("store: duplicate email")
)

// Store is the top-level handle to the credential collaborator.
type Store interface {
	Credentials() CredentialStore

	// Ping reports whether the collaborator is reachable, for readiness.
	Ping(ctx context.Context) error

	Close() error
}

// CredentialStore is the narrow contract for credential records: lookup for
// login, insert for the registration hand-off. Emails are stored and looked
// up in normalized form.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (domain.Credential, error)
	Insert(ctx context.Context, cred domain.Credential) error
}
