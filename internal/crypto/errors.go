// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrMalformedHash is returned when a stored hash is not a valid PHC
	// record. Only the server writes hashes, so this indicates corrupted data.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrVerificationFailed is returned when a candidate password does not
	// match the stored hash.
	ErrVerificationFailed = errors.New("password verification failed")

	// ErrInvalidHashParams is returned by NewPasswordHasher for unusable
	// cost parameters.
	ErrInvalidHashParams = errors.New("invalid password hash parameters")

	// ErrGeneratingSalt is returned when the system CSPRNG fails.
	ErrGeneratingSalt = errors.New("failed to generate salt")
)
