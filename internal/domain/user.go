package domain

import "time"

// Role enumerates account roles carried by users and embedded in tokens.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the domain model for accounts held in the user store.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	FirstName    string
	LastName     string
	Enabled      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
