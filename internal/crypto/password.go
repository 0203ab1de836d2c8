// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/MKhiriev/trade-journal/internal/config"
	"github.com/MKhiriev/trade-journal/models"
	"golang.org/x/crypto/argon2"
)

const fallbackPasswordLength = 32

// argon2Hasher is the argon2id implementation of [PasswordHasher].
type argon2Hasher struct {
	// params are written into every new record.
	params HashParams

	// saltLength and keyLength size the salt and digest of new records.
	// Verification always uses the lengths found in the record.
	saltLength uint32
	keyLength  uint32

	// fallbackHash is a record for a random password nobody knows,
	// derived with params so verifying it costs the same as a real record.
	fallbackHash string

	// random is the salt source.
	random io.Reader
}

// NewPasswordHasher constructs an argon2id [PasswordHasher] from cfg and
// computes its fallback hash. Construction therefore costs one full hash
// and should happen once at startup.
func NewPasswordHasher(cfg config.Auth) (PasswordHasher, error) {
	h, err := newArgon2Hasher(cfg, rand.Reader)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func newArgon2Hasher(cfg config.Auth, random io.Reader) (*argon2Hasher, error) {
	params := HashParams{
		Memory:      cfg.HashMemory,
		Iterations:  cfg.HashIterations,
		Parallelism: cfg.HashParallelism,
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHashParams, err)
	}
	if cfg.HashSaltLength < 8 || cfg.HashKeyLength < 16 {
		return nil, fmt.Errorf("%w: salt must be at least 8 bytes and key at least 16 bytes, got %d and %d",
			ErrInvalidHashParams, cfg.HashSaltLength, cfg.HashKeyLength)
	}

	h := &argon2Hasher{
		params:     params,
		saltLength: cfg.HashSaltLength,
		keyLength:  cfg.HashKeyLength,
		random:     random,
	}

	throwaway := make([]byte, fallbackPasswordLength)
	if _, err := io.ReadFull(random, throwaway); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneratingSalt, err)
	}
	secret := models.NewSecretFromBytes(throwaway)
	clear(throwaway)
	defer secret.Wipe()

	fallback, err := h.HashPassword(secret)
	if err != nil {
		return nil, fmt.Errorf("error computing fallback hash: %w", err)
	}
	h.fallbackHash = fallback

	return h, nil
}

// HashPassword implements [PasswordHasher].
func (h *argon2Hasher) HashPassword(password models.Secret) (string, error) {
	salt := make([]byte, h.saltLength)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratingSalt, err)
	}

	record := PHC{
		Algorithm: AlgorithmArgon2id,
		Version:   argon2.Version,
		Params:    h.params,
		Salt:      salt,
	}
	record.Digest = argon2.IDKey(password.Expose(), salt, h.params.Iterations, h.params.Memory, h.params.Parallelism, h.keyLength)

	return record.String(), nil
}

// VerifyPassword implements [PasswordHasher]. The digest comparison runs in
// constant time with respect to the digest contents.
func (h *argon2Hasher) VerifyPassword(candidate models.Secret, encoded string) error {
	record, err := ParseHash(encoded)
	if err != nil {
		return err
	}

	computed := record.derive(candidate.Expose())
	defer clear(computed)

	if subtle.ConstantTimeCompare(computed, record.Digest) != 1 {
		return ErrVerificationFailed
	}

	return nil
}

// FallbackHash implements [PasswordHasher].
func (h *argon2Hasher) FallbackHash() string {
	return h.fallbackHash
}

// NeedsRehash implements [PasswordHasher]. Unparseable records report true.
func (h *argon2Hasher) NeedsRehash(encoded string) bool {
	record, err := ParseHash(encoded)
	if err != nil {
		return true
	}

	return record.Algorithm != AlgorithmArgon2id ||
		record.Params != h.params ||
		uint32(len(record.Salt)) != h.saltLength ||
		uint32(len(record.Digest)) != h.keyLength
}
