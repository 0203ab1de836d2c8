// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"testing"
	"testing/iotest"

	"github.com/MKhiriev/trade-journal/internal/config"
	"github.com/MKhiriev/trade-journal/models"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
)

// cheap parameters keep the tests fast; production defaults live in config.
var testAuth = config.Auth{
	HashMemory:      1024,
	HashIterations:  1,
	HashParallelism: 1,
	HashSaltLength:  16,
	HashKeyLength:   32,
}

func newTestHasher(t *testing.T, cfg config.Auth) PasswordHasher {
	t.Helper()
	h, err := NewPasswordHasher(cfg)
	require.NoError(t, err)
	return h
}

// TestHashPassword_RoundTrip verifies that a produced record parses back into
// the configured parameters and verifies against its password.
func TestHashPassword_RoundTrip(t *testing.T) {
	h := newTestHasher(t, testAuth)
	password := models.NewSecret("correct horse battery staple")

	encoded, err := h.HashPassword(password)
	require.NoError(t, err)

	phc, err := ParseHash(encoded)
	require.NoError(t, err)
	assert.Equal(t, AlgorithmArgon2id, phc.Algorithm)
	assert.Equal(t, argon2.Version, phc.Version)
	assert.Equal(t, HashParams{Memory: 1024, Iterations: 1, Parallelism: 1}, phc.Params)
	assert.Len(t, phc.Salt, 16)
	assert.Len(t, phc.Digest, 32)

	assert.NoError(t, h.VerifyPassword(password, encoded))
}

// TestVerifyPassword_WrongCandidate verifies that any other candidate fails
// with ErrVerificationFailed.
func TestVerifyPassword_WrongCandidate(t *testing.T) {
	h := newTestHasher(t, testAuth)
	faker := gofakeit.New(7)

	for range 20 {
		password := faker.Password(true, true, true, true, false, 16)
		encoded, err := h.HashPassword(models.NewSecret(password))
		require.NoError(t, err)

		require.NoError(t, h.VerifyPassword(models.NewSecret(password), encoded))

		err = h.VerifyPassword(models.NewSecret(password+"x"), encoded)
		assert.ErrorIs(t, err, ErrVerificationFailed)

		err = h.VerifyPassword(models.NewSecret(""), encoded)
		assert.ErrorIs(t, err, ErrVerificationFailed)
	}
}

// TestVerifyPassword_Idempotent verifies that repeated verification of the
// same pair yields the same outcome.
func TestVerifyPassword_Idempotent(t *testing.T) {
	h := newTestHasher(t, testAuth)
	encoded, err := h.HashPassword(models.NewSecret("pass"))
	require.NoError(t, err)

	for range 5 {
		assert.NoError(t, h.VerifyPassword(models.NewSecret("pass"), encoded))
		assert.ErrorIs(t, h.VerifyPassword(models.NewSecret("nope"), encoded), ErrVerificationFailed)
	}
}

// TestVerifyPassword_MalformedHash verifies that unparseable records are
// reported as ErrMalformedHash, not as a wrong password.
func TestVerifyPassword_MalformedHash(t *testing.T) {
	h := newTestHasher(t, testAuth)

	err := h.VerifyPassword(models.NewSecret("pass"), "asdjflsajflsfls")

	assert.ErrorIs(t, err, ErrMalformedHash)
	assert.NotErrorIs(t, err, ErrVerificationFailed)
}

// TestVerifyPassword_UsesEmbeddedParameters verifies that records written
// with older parameters still verify after the configuration changes.
func TestVerifyPassword_UsesEmbeddedParameters(t *testing.T) {
	oldHasher := newTestHasher(t, testAuth)

	stronger := testAuth
	stronger.HashMemory = 2048
	stronger.HashIterations = 2
	stronger.HashKeyLength = 24
	newHasher := newTestHasher(t, stronger)

	encoded, err := oldHasher.HashPassword(models.NewSecret("pass"))
	require.NoError(t, err)

	assert.NoError(t, newHasher.VerifyPassword(models.NewSecret("pass"), encoded))
	assert.True(t, newHasher.NeedsRehash(encoded))
	assert.False(t, oldHasher.NeedsRehash(encoded))
}

// TestVerifyPassword_Argon2iRecord verifies records of the argon2i variant.
func TestVerifyPassword_Argon2iRecord(t *testing.T) {
	h := newTestHasher(t, testAuth)
	salt := bytes.Repeat([]byte{0x42}, 16)

	record := PHC{
		Algorithm: AlgorithmArgon2i,
		Version:   argon2.Version,
		Params:    HashParams{Memory: 512, Iterations: 2, Parallelism: 1},
		Salt:      salt,
		Digest:    argon2.Key([]byte("pass"), salt, 2, 512, 1, 32),
	}

	assert.NoError(t, h.VerifyPassword(models.NewSecret("pass"), record.String()))
	assert.ErrorIs(t, h.VerifyPassword(models.NewSecret("other"), record.String()), ErrVerificationFailed)
	assert.True(t, h.NeedsRehash(record.String()))
}

// TestHashPassword_FreshSaltEachTime verifies that equal passwords produce
// different records.
func TestHashPassword_FreshSaltEachTime(t *testing.T) {
	h := newTestHasher(t, testAuth)

	first, err := h.HashPassword(models.NewSecret("same"))
	require.NoError(t, err)
	second, err := h.HashPassword(models.NewSecret("same"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

// TestFallbackHash_IsValidAndStable verifies that the fallback record is
// structurally valid, uses the configured parameters, and does not change.
func TestFallbackHash_IsValidAndStable(t *testing.T) {
	h := newTestHasher(t, testAuth)

	fallback := h.FallbackHash()
	phc, err := ParseHash(fallback)
	require.NoError(t, err)

	assert.Equal(t, HashParams{Memory: 1024, Iterations: 1, Parallelism: 1}, phc.Params)
	assert.Len(t, phc.Digest, 32)
	assert.False(t, h.NeedsRehash(fallback))
	assert.Equal(t, fallback, h.FallbackHash())

	assert.ErrorIs(t, h.VerifyPassword(models.NewSecret(""), fallback), ErrVerificationFailed)
	assert.ErrorIs(t, h.VerifyPassword(models.NewSecret("password"), fallback), ErrVerificationFailed)
}

// TestFallbackHash_DiffersBetweenInstances verifies that each hasher derives
// its own fallback from a random password.
func TestFallbackHash_DiffersBetweenInstances(t *testing.T) {
	assert.NotEqual(t, newTestHasher(t, testAuth).FallbackHash(), newTestHasher(t, testAuth).FallbackHash())
}

// TestNewPasswordHasher_InvalidParams verifies parameter validation.
func TestNewPasswordHasher_InvalidParams(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*config.Auth)
	}{
		{name: "zero memory", mod: func(c *config.Auth) { c.HashMemory = 0 }},
		{name: "zero iterations", mod: func(c *config.Auth) { c.HashIterations = 0 }},
		{name: "zero parallelism", mod: func(c *config.Auth) { c.HashParallelism = 0 }},
		{name: "memory below 8p", mod: func(c *config.Auth) { c.HashMemory = 16; c.HashParallelism = 4 }},
		{name: "short salt", mod: func(c *config.Auth) { c.HashSaltLength = 4 }},
		{name: "short key", mod: func(c *config.Auth) { c.HashKeyLength = 8 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testAuth
			tt.mod(&cfg)

			h, err := NewPasswordHasher(cfg)
			assert.Nil(t, h)
			assert.ErrorIs(t, err, ErrInvalidHashParams)
		})
	}
}

// TestNewPasswordHasher_RandomFailure verifies that a failing CSPRNG surfaces
// as ErrGeneratingSalt.
func TestNewPasswordHasher_RandomFailure(t *testing.T) {
	h, err := newArgon2Hasher(testAuth, iotest.ErrReader(assert.AnError))

	assert.Nil(t, h)
	assert.ErrorIs(t, err, ErrGeneratingSalt)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestHashPassword_RandomFailure verifies that salt generation errors are
// returned instead of producing a record.
func TestHashPassword_RandomFailure(t *testing.T) {
	h, err := newArgon2Hasher(testAuth, rand.Reader)
	require.NoError(t, err)
	h.random = iotest.ErrReader(assert.AnError)

	encoded, err := h.HashPassword(models.NewSecret("pass"))

	assert.Empty(t, encoded)
	assert.ErrorIs(t, err, ErrGeneratingSalt)
}
