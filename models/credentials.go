package models

import "github.com/google/uuid"

// Credentials is the username/password pair presented by a client.
// It lives for a single request and is never persisted.
type Credentials struct {
	// Username as sent by the client, not normalized.
	Username string `json:"username"`

	// Password is the candidate password. It is redacted in every
	// textual representation.
	Password Secret `json:"password"`
}

// StoredCredential is what the store knows about a username: the user's
// identifier and the PHC-formatted password hash.
type StoredCredential struct {
	UserID       uuid.UUID `json:"user_id"`
	PasswordHash string    `json:"-"`
}

// VerifiedIdentity is produced only when the presented password matched
// the hash stored for an existing user.
type VerifiedIdentity struct {
	UserID uuid.UUID `json:"user_id"`
}
