package service

import (
	"context"
	"testing"
	"time"

	"taskdeck/internal/domain"
	"taskdeck/internal/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() *AuthService {
	tokens := NewTokenService("test-secret", time.Hour)
	return NewAuthService(repository.NewMemUserStore(), tokens, bcrypt.MinCost)
}

func TestRegisterThenLogin(t *testing.T) {
	auth := newAuthService()
	ctx := context.Background()

	regToken, err := auth.Register(ctx, "alice", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, regToken)

	loginToken, err := auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, loginToken)

	// both tokens verify to the same identity
	u1, err := auth.Verify(ctx, regToken)
	require.NoError(t, err)
	u2, err := auth.Verify(ctx, loginToken)
	require.NoError(t, err)
	require.Equal(t, u1.ID, u2.ID)
	require.Equal(t, "alice", u1.Username)
}

func TestRegisterValidation(t *testing.T) {
	auth := newAuthService()
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"missing username", "", "secret1"},
		{"missing password", "alice", ""},
		{"short password", "alice", "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Register(ctx, tc.username, tc.password)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	auth := newAuthService()
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "alice", "different1")
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestLoginBadCredentials(t *testing.T) {
	auth := newAuthService()
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	// wrong password and unknown username yield the same error
	_, errWrongPass := auth.Login(ctx, "alice", "wrong-password")
	require.ErrorIs(t, errWrongPass, domain.ErrBadCredentials)

	_, errNoUser := auth.Login(ctx, "nobody", "secret1")
	require.ErrorIs(t, errNoUser, domain.ErrBadCredentials)

	require.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestVerify(t *testing.T) {
	auth := newAuthService()
	ctx := context.Background()

	_, err := auth.Verify(ctx, "")
	require.ErrorIs(t, err, domain.ErrTokenMissing)

	_, err = auth.Verify(ctx, "not-a-token")
	require.ErrorIs(t, err, domain.ErrTokenInvalid)

	tok, err := auth.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	u, err := auth.Verify(ctx, tok)
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
}

func TestPasswordsAreHashed(t *testing.T) {
	users := repository.NewMemUserStore()
	tokens := NewTokenService("test-secret", time.Hour)
	auth := NewAuthService(users, tokens, bcrypt.MinCost)
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	u, err := users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", u.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
}
