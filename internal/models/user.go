package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a login account.
//
// Accounts are provisioned by an operator; there is no self-service sign-up
// surface. A user is not necessarily a member of the house (the admin who
// manages the books may live elsewhere).
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Email is the user's email address (unique). Used for login.
	Email string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a User with a fresh ID and creation timestamp.
func NewUser(email, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}

// Profile carries the advisory admin flag for a user.
//
// A profile row is ensured to exist on every sign-in (create-if-absent; an
// existing IsAdmin value is never overwritten). The flag itself is only ever
// granted out-of-band via cmd/kosctl.
type Profile struct {
	// UserID references the user this profile belongs to.
	UserID string

	// IsAdmin reports whether the user may mutate the ledgers.
	IsAdmin bool
}
