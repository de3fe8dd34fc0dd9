package auth

import (
	"encoding/base64"
	"errors"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Claims is the fixed payload embedded in every issued token.
type Claims struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenCodec signs and parses compact HS256 tokens. It is a pure
// cryptographic/encoding layer: expiry and account rules live elsewhere.
type TokenCodec struct {
	key []byte
}

// NewTokenCodec builds a codec over the shared secret. The secret is
// base64-encoded before use as the HMAC key, matching the wire format of
// previously issued tokens.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{key: []byte(base64.StdEncoding.EncodeToString([]byte(secret)))}
}

// Sign serializes claims into a signed compact token string.
func (c *TokenCodec) Sign(claims *Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

// Parse validates structure and signature and returns the embedded claims.
// It performs no expiry validation; the verifier applies the calendar-day
// expiry rule on top.
func (c *TokenCodec) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, c.keyFunc, jwt.WithoutClaimsValidation())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, ErrSignatureInvalid) {
			return nil, ErrSignatureInvalid
		}
		return nil, ErrMalformedToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrMalformedToken
	}
	return claims, nil
}

func (c *TokenCodec) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method != jwt.SigningMethodHS256 {
		return nil, ErrSignatureInvalid
	}
	return c.key, nil
}
