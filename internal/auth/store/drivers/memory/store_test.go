package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/bychefiza/edge/internal/auth/domain"
	"github.com/bychefiza/edge/internal/auth/store"
	"github.com/stretchr/testify/require"
)

func TestStore_InsertAndFind(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	cred := domain.Credential{
		SubjectID:    "sub-1",
		Email:        "a@b.com",
		Username:     "alice",
		PasswordHash: "$argon2id$...",
	}

	require.NoError(t, s.Credentials().Insert(ctx, cred))

	t.Run("finds by exact email", func(t *testing.T) {
		got, err := s.Credentials().FindByEmail(ctx, "a@b.com")
		require.NoError(t, err)
		require.Equal(t, cred, got)
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		got, err := s.Credentials().FindByEmail(ctx, "  A@B.COM ")
		require.NoError(t, err)
		require.Equal(t, "sub-1", got.SubjectID)
	})

	t.Run("unknown email yields ErrNotFound", func(t *testing.T) {
		_, err := s.Credentials().FindByEmail(ctx, "nobody@b.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email yields ErrDuplicate", func(t *testing.T) {
		err := s.Credentials().Insert(ctx, domain.Credential{Email: "A@b.com"})
		require.ErrorIs(t, err, store.ErrDuplicate)
	})
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = s.Credentials().Insert(ctx, domain.Credential{
				Email: string(rune('a'+n%26)) + "@example.com",
			})
			_, _ = s.Credentials().FindByEmail(ctx, "a@example.com")
		}(i)
	}
	wg.Wait()
}

func TestStore_CancelledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Credentials().FindByEmail(ctx, "a@b.com")
	require.ErrorIs(t, err, context.Canceled)
}
