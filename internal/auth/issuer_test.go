package auth

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/auth-gateway/internal/domain"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func enabledAlice(t *testing.T) *domain.User {
	return &domain.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: hashFor(t, "secret"),
		Role:         domain.RoleUser,
		Enabled:      true,
	}
}

func TestIssueReturnsDayBoundedToken(t *testing.T) {
	codec := NewTokenCodec(testSecret)
	issuer := NewTokenIssuer(newFakeUserStore(enabledAlice(t)), codec, "test-issuer")
	now := time.Date(2023, 5, 31, 18, 30, 12, 0, time.UTC)
	issuer.now = func() time.Time { return now }

	details, err := issuer.Issue(context.Background(), "alice", "secret")
	require.NoError(t, err)

	assert.Equal(t, int64(1), details.UserID)
	assert.NotEmpty(t, details.Token)
	assert.Equal(t, time.Date(2023, 5, 31, 0, 0, 0, 0, time.UTC), details.IssuedAt)
	assert.Equal(t, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), details.ExpiresAt)

	claims, err := codec.Parse(details.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	codec := NewTokenCodec(testSecret)
	issuer := NewTokenIssuer(newFakeUserStore(enabledAlice(t)), codec, "test-issuer")

	details, err := issuer.Issue(context.Background(), "alice", "secret")
	require.NoError(t, err)

	result, err := NewTokenVerifier(codec).Verify(details.Token)
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(details.UserID, 10), result.Claims.Subject)
}

func TestIssueUnknownUsername(t *testing.T) {
	issuer := NewTokenIssuer(newFakeUserStore(), NewTokenCodec(testSecret), "test-issuer")

	_, err := issuer.Issue(context.Background(), "nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidUsername)
}

func TestIssueWrongPassword(t *testing.T) {
	issuer := NewTokenIssuer(newFakeUserStore(enabledAlice(t)), NewTokenCodec(testSecret), "test-issuer")

	_, err := issuer.Issue(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIssueDisabledAccount(t *testing.T) {
	// A disabled account and a wrong password must be indistinguishable.
	alice := enabledAlice(t)
	alice.Enabled = false
	issuer := NewTokenIssuer(newFakeUserStore(alice), NewTokenCodec(testSecret), "test-issuer")

	_, err := issuer.Issue(context.Background(), "alice", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
