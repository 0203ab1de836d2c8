package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account of the trading journal.
type User struct {
	// ID is the unique identifier of the user, generated by the server.
	ID uuid.UUID `json:"id"`

	// Visible marks whether the account is listed to other users.
	Visible bool `json:"visible"`

	// Username is the unique login name. It is the lookup key for
	// Basic authentication.
	Username string `json:"username"`

	// Email is the contact address of the user.
	Email string `json:"email"`

	// PasswordHash is the PHC-formatted argon2 hash of the user's password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last change of the account.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserRequest is the body of a user creation request.
type UserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password Secret `json:"password"`
}
