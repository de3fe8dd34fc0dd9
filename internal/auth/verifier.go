package auth

import "time"

// VerificationResult is produced only on successful verification.
type VerificationResult struct {
	Claims *Claims
	Token  string
}

// TokenVerifier validates an inbound token's signature and expiry.
type TokenVerifier struct {
	codec *TokenCodec
	now   func() time.Time
}

// NewTokenVerifier builds a verifier over the codec.
func NewTokenVerifier(codec *TokenCodec) *TokenVerifier {
	return &TokenVerifier{codec: codec, now: time.Now}
}

// Verify parses the token and applies the expiry rule. Expiry is compared
// at calendar-date granularity: the token stays valid through the whole of
// its expiry day and fails only once that date is strictly before today.
func (v *TokenVerifier) Verify(token string) (*VerificationResult, error) {
	claims, err := v.codec.Parse(token)
	if err != nil {
		return nil, err
	}

	if claims.ExpiresAt == nil {
		return nil, ErrMalformedToken
	}
	if dateOf(claims.ExpiresAt.Time).Before(dateOf(v.now())) {
		return nil, ErrTokenExpired
	}

	return &VerificationResult{Claims: claims, Token: token}, nil
}
