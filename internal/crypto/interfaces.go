// Package crypto implements password hashing for stored credentials.
//
// Hashes are argon2 records in the self-describing PHC string format
//
//	$argon2id$v=19$m=<memory KiB>,t=<iterations>,p=<parallelism>$<salt>$<digest>
//
// with salt and digest in unpadded standard base64. Every record carries
// its own cost parameters, so hashes written under older settings keep
// verifying after the configuration changes.
package crypto

import "github.com/MKhiriev/trade-journal/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes and verifies user passwords.
//
// Implementations are safe for concurrent use. All methods are CPU and memory
// bound and should be called from a worker pool rather than a request
// goroutine.
type PasswordHasher interface {
	// HashPassword derives a new PHC record for password using a fresh
	// random salt and the configured cost parameters.
	HashPassword(password models.Secret) (string, error)

	// VerifyPassword checks candidate against the PHC record encoded.
	// It returns ErrMalformedHash if encoded cannot be parsed and
	// ErrVerificationFailed if the digests differ.
	VerifyPassword(candidate models.Secret, encoded string) error

	// FallbackHash returns a valid PHC record that no client knows the
	// password for. It is computed once, with the configured parameters,
	// and is verified in place of a real record when a username is unknown.
	FallbackHash() string

	// NeedsRehash reports whether encoded was produced with parameters
	// other than the configured ones.
	NeedsRehash(encoded string) bool
}
