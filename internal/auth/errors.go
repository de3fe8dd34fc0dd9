package auth

import "errors"

// Sentinel failures produced by the token and authorization components.
// The HTTP boundary maps them to status codes; the messages stay server-side.
var (
	// ErrMalformedToken indicates the token string is not a structurally
	// valid compact JWS.
	ErrMalformedToken = errors.New("malformed token")

	// ErrSignatureInvalid indicates the token signature does not match the
	// configured signing secret.
	ErrSignatureInvalid = errors.New("token signature mismatch")

	// ErrTokenExpired indicates the token's expiry date is before today.
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidUsername indicates no account exists for the login username.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidCredentials covers both a disabled account and a wrong
	// password at login. The two causes are deliberately not distinguished
	// so callers cannot probe account state.
	ErrInvalidCredentials = errors.New("account disabled or invalid password")

	// ErrAccountDisabled indicates the live user record behind a verified
	// token is missing or disabled.
	ErrAccountDisabled = errors.New("user disabled")
)
