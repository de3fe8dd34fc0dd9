package auth

import "github.com/spec-kit/auth-gateway/internal/domain"

type principalKind int

const (
	principalAnonymous principalKind = iota
	principalAuthenticated
)

// Principal is the identity extracted from a verified token. It is a closed
// variant: either anonymous or authenticated with an id and username.
// It carries no secret material.
type Principal struct {
	kind     principalKind
	id       int64
	username string
}

// Anonymous returns the unauthenticated principal.
func Anonymous() Principal {
	return Principal{kind: principalAnonymous}
}

// Authenticated returns a principal for the given user identity.
func Authenticated(id int64, username string) Principal {
	return Principal{kind: principalAuthenticated, id: id, username: username}
}

// IsAuthenticated reports whether the principal carries an identity.
func (p Principal) IsAuthenticated() bool {
	return p.kind == principalAuthenticated
}

// Identity returns the user id and username; ok is false for the anonymous
// principal.
func (p Principal) Identity() (id int64, username string, ok bool) {
	if p.kind != principalAuthenticated {
		return 0, "", false
	}
	return p.id, p.username, true
}

// Candidate pairs a not-yet-trusted principal with the verified claims it
// was extracted from. Only the authorization gate turns it into an
// AuthorizedContext.
type Candidate struct {
	Principal Principal
	Claims    *Claims
}

// AuthorizedContext is the only artifact downstream handlers trust. The
// granted role comes from the live user record, never from the token.
type AuthorizedContext struct {
	Principal Principal
	Role      domain.Role
}
