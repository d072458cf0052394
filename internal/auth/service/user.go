package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bychefiza/edge/internal/auth/domain"
	"github.com/bychefiza/edge/internal/auth/store"
	"github.com/bychefiza/edge/pkg/cryptox"
	"github.com/bychefiza/edge/pkg/idx"
	"github.com/bychefiza/edge/pkg/slogx"
)

var ErrEmailTaken = errors.New("email_taken")

// UserService handles registration: validate, hash, and hand the credential
// off to the store collaborator. It never keeps user records itself.
type UserService struct {
	Store store.Store

	// Hash overrides the password hashing function; nil means argon2id via
	// cryptox. Tests use it to observe that validation rejects before any
	// hashing work happens.
	Hash func(password string) (string, error)
}

// Register validates input, hashes the password, and inserts the credential.
// Validation runs first: a short password is rejected before any hashing or
// store work. The returned User echoes identity only, never the hash.
func (s *UserService) Register(
	ctx context.Context,
	email, password, username string,
) (*domain.User, error) {
	if err := domain.ValidateRegistration(email, password, username); err != nil {
		return nil, err
	}

	hashFn := s.Hash
	if hashFn == nil {
		hashFn = cryptox.HashPassword
	}

	hash, err := hashFn(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	cred := domain.Credential{
		SubjectID:    idx.New().String(),
		Email:        domain.NormalizeEmail(email),
		Username:     username,
		PasswordHash: hash,
	}

	if err := s.Store.Credentials().Insert(ctx, cred); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("credential hand-off: %w", err)
	}

	slogx.FromContext(ctx).Info("user registered", "email", cred.Email)

	return &domain.User{ID: cred.SubjectID, Email: cred.Email, Username: cred.Username}, nil
}
