package dto

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Date serializes as a calendar date without a time component, matching
// the issuance/expiry granularity of tokens.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// MarshalJSON renders the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format(dateLayout))), nil
}

// UnmarshalJSON parses a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	parsed, err := time.Parse(`"`+dateLayout+`"`, string(data))
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Validate checks required fields and basic length bounds.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 64)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
		validation.Field(&r.FirstName, validation.Length(0, 128)),
		validation.Field(&r.LastName, validation.Length(0, 128)),
	)
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks required fields.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	UserID    int64  `json:"userId"`
	Token     string `json:"token"`
	IssuedAt  Date   `json:"issuedAt"`
	ExpiresAt Date   `json:"expiresAt"`
}
