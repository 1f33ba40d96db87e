package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soapdogg/travel-personal-assistant/internal/domain"
)

func TestVerifySuccess(t *testing.T) {
	repo := &stubCredentials{
		cred: &domain.Credential{
			Username:     "alice",
			PasswordHash: HashPassword("secret"),
			CreatedAt:    "2024-01-01T00:00:00Z",
		},
	}
	verifier := NewVerifier(repo)

	cred, err := verifier.Verify(context.Background(), "alice", "secret")
	require.NoError(t, err)
	require.Equal(t, "alice", cred.Username)
	require.Equal(t, "2024-01-01T00:00:00Z", cred.CreatedAt)
	require.Equal(t, "alice", repo.gotUsername)
}

func TestVerifyInvalidPassword(t *testing.T) {
	repo := &stubCredentials{
		cred: &domain.Credential{
			Username:     "alice",
			PasswordHash: HashPassword("secret"),
		},
	}
	verifier := NewVerifier(repo)

	_, err := verifier.Verify(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidPassword)
}

func TestVerifyUserNotFound(t *testing.T) {
	verifier := NewVerifier(&stubCredentials{})

	_, err := verifier.Verify(context.Background(), "nobody", "x")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestVerifyStoreErrorPassesThrough(t *testing.T) {
	storeErr := errors.New("connection reset")
	verifier := NewVerifier(&stubCredentials{err: storeErr})

	_, err := verifier.Verify(context.Background(), "alice", "secret")
	require.ErrorIs(t, err, storeErr)
}

func TestHashPasswordIsStable(t *testing.T) {
	first := HashPassword("secret")
	require.Len(t, first, 64)
	require.Equal(t, first, HashPassword("secret"))
	require.NotEqual(t, first, HashPassword("Secret"))
}

type stubCredentials struct {
	cred        *domain.Credential
	err         error
	gotUsername string
}

func (s *stubCredentials) Get(_ context.Context, username string) (*domain.Credential, error) {
	s.gotUsername = username
	return s.cred, s.err
}
