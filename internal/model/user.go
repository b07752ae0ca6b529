package model

import "time"

// User represents an account that can sign in to the platform.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Hash          *string   `json:"-"` // bcrypt hash, never serialized
	Firstname     *string   `json:"firstname,omitempty"`
	Lastname      *string   `json:"lastname,omitempty"`
	Role          string    `json:"role"` // user, admin
	EmailVerified bool      `json:"email_verified"`
	CreatedOn     time.Time `json:"created_on"`
	UpdatedOn     time.Time `json:"updated_on"`
}

// Role constants
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// TokenClaims carries the authenticated identity extracted from an access token.
type TokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
