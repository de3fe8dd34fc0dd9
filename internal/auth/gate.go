package auth

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
)

// AuthorizationGate converts a verified candidate into a trusted context by
// re-reading the live user record. Tokens are never revoked, so this live
// re-check is the only point where a disabled account is stopped.
type AuthorizationGate struct {
	users UserStore
}

// NewAuthorizationGate builds the gate.
func NewAuthorizationGate(users UserStore) *AuthorizationGate {
	return &AuthorizationGate{users: users}
}

// Authorize fetches the current user record behind the candidate. A missing
// or disabled account fails with ErrAccountDisabled regardless of token
// validity. The granted role is taken from the live record, so role changes
// take effect without reissuing tokens.
func (g *AuthorizationGate) Authorize(ctx context.Context, candidate Candidate) (*AuthorizedContext, error) {
	if !candidate.Principal.IsAuthenticated() {
		return nil, ErrAccountDisabled
	}
	id, _, _ := candidate.Principal.Identity()

	user, err := g.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountDisabled
		}
		return nil, err
	}
	if !user.Enabled {
		return nil, ErrAccountDisabled
	}

	return &AuthorizedContext{Principal: candidate.Principal, Role: user.Role}, nil
}

// CandidateFromClaims extracts a not-yet-trusted principal from verified
// claims. A subject that is not a numeric id is treated as malformed.
func CandidateFromClaims(claims *Claims) (Candidate, error) {
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Candidate{}, ErrMalformedToken
	}
	return Candidate{Principal: Authenticated(id, claims.Username), Claims: claims}, nil
}
