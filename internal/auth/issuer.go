package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/auth-gateway/internal/domain"
)

// UserStore is the external lookup service the security components depend
// on. The Postgres repository satisfies it.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// TokenDetails is returned to the caller at login. IssuedAt and ExpiresAt
// are calendar dates (midnight-truncated), not instants.
type TokenDetails struct {
	UserID    int64
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer authenticates credentials against the user store and mints
// signed tokens.
type TokenIssuer struct {
	users  UserStore
	codec  *TokenCodec
	issuer string
	now    func() time.Time
}

// NewTokenIssuer builds an issuer stamping tokens with the given issuer name.
func NewTokenIssuer(users UserStore, codec *TokenCodec, issuer string) *TokenIssuer {
	return &TokenIssuer{users: users, codec: codec, issuer: issuer, now: time.Now}
}

// Issue authenticates the credentials and returns a signed token.
// An unknown username fails with ErrInvalidUsername; a disabled account and
// a wrong password both fail with ErrInvalidCredentials.
//
// Expiry is a fixed one-day window at calendar-day granularity: issued-at is
// today's date and expires-at is tomorrow's, so the token is honored for the
// entirety of its expiry day. The configured TTL setting is nominal and not
// consulted here.
func (i *TokenIssuer) Issue(ctx context.Context, username, password string) (*TokenDetails, error) {
	user, err := i.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidUsername
		}
		return nil, err
	}

	if !user.Enabled || ComparePassword(user.PasswordHash, password) != nil {
		return nil, ErrInvalidCredentials
	}

	issuedAt := dateOf(i.now())
	expiresAt := issuedAt.AddDate(0, 0, 1)

	claims := &Claims{
		Role:     string(user.Role),
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    i.issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := i.codec.Sign(claims)
	if err != nil {
		return nil, err
	}

	return &TokenDetails{
		UserID:    user.ID,
		Token:     token,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// dateOf truncates an instant to midnight in its location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
