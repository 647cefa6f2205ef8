package models

import "time"

// User represents an account entity used for authentication and authorization.
// Every expense and salary row belongs to exactly one User.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// Email is the unique contact address supplied at registration.
	Email string `json:"email"`

	// HashedPassword stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized into API responses.
	HashedPassword string `json:"-"`

	// IsActive marks whether the account may authenticate.
	// Tokens belonging to deactivated accounts are rejected.
	IsActive bool `json:"is_active"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
