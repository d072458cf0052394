// Package memory implements the credential store in process memory. It backs
// local development and tests; production deployments point the auth service
// at a real credential collaborator behind the same interface.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bychefiza/edge/internal/auth/domain"
	"github.com/bychefiza/edge/internal/auth/store"
)

// Store holds credential records keyed by normalized email.
type Store struct {
	mu    sync.RWMutex
	byKey map[string]domain.Credential
}

var _ store.Store = (*Store)(nil)

// NewStore returns an empty in-memory credential store.
func NewStore() *Store {
	return &Store{byKey: make(map[string]domain.Credential)}
}

func (s *Store) Credentials() store.CredentialStore { return s }

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) Close() error { return nil }

// FindByEmail looks up a credential record by normalized email.
func (s *Store) FindByEmail(ctx context.Context, email string) (domain.Credential, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credential{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	cred, ok := s.byKey[domain.NormalizeEmail(email)]
	if !ok {
		return domain.Credential{}, store.ErrNotFound
	}
	return cred, nil
}

// Insert stores a credential record, rejecting duplicate emails.
func (s *Store) Insert(ctx context.Context, cred domain.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := domain.NormalizeEmail(cred.Email)
	if cred.CreatedAt.IsZero() {
		cred.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byKey[key]; exists {
		return store.ErrDuplicate
	}
	s.byKey[key] = cred
	return nil
}
