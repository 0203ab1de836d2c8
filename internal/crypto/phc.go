// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Supported algorithm identifiers.
const (
	AlgorithmArgon2id = "argon2id"
	AlgorithmArgon2i  = "argon2i"
)

var b64 = base64.RawStdEncoding

// HashParams are the argon2 cost parameters embedded in every PHC record.
type HashParams struct {
	// Memory is the memory cost in KiB.
	Memory uint32
	// Iterations is the time cost.
	Iterations uint32
	// Parallelism is the number of lanes.
	Parallelism uint8
}

// Validate checks the constraints argon2 places on its parameters.
func (p HashParams) Validate() error {
	if p.Memory == 0 || p.Iterations == 0 || p.Parallelism == 0 {
		return fmt.Errorf("m, t and p must be positive, got m=%d,t=%d,p=%d", p.Memory, p.Iterations, p.Parallelism)
	}
	if p.Memory < 8*uint32(p.Parallelism) {
		return fmt.Errorf("memory cost %d KiB is below 8*p=%d", p.Memory, 8*uint32(p.Parallelism))
	}
	return nil
}

// PHC is a parsed password hash record.
type PHC struct {
	Algorithm string
	Version   int
	Params    HashParams
	Salt      []byte
	Digest    []byte
}

// ParseHash parses a PHC-formatted argon2 record. Any deviation from the
// format wraps ErrMalformedHash.
func ParseHash(encoded string) (PHC, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return PHC{}, fmt.Errorf("%w: expected 5 '$'-separated fields", ErrMalformedHash)
	}

	phc := PHC{Algorithm: parts[1]}
	if phc.Algorithm != AlgorithmArgon2id && phc.Algorithm != AlgorithmArgon2i {
		return PHC{}, fmt.Errorf("%w: unsupported algorithm %q", ErrMalformedHash, phc.Algorithm)
	}

	version, ok := strings.CutPrefix(parts[2], "v=")
	if !ok {
		return PHC{}, fmt.Errorf("%w: missing version field", ErrMalformedHash)
	}
	v, err := strconv.Atoi(version)
	if err != nil || v != argon2.Version {
		return PHC{}, fmt.Errorf("%w: unsupported version %q", ErrMalformedHash, version)
	}
	phc.Version = v

	params, err := parseParams(parts[3])
	if err != nil {
		return PHC{}, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	phc.Params = params

	if phc.Salt, err = b64.DecodeString(parts[4]); err != nil || len(phc.Salt) == 0 {
		return PHC{}, fmt.Errorf("%w: invalid salt encoding", ErrMalformedHash)
	}
	if phc.Digest, err = b64.DecodeString(parts[5]); err != nil || len(phc.Digest) == 0 {
		return PHC{}, fmt.Errorf("%w: invalid digest encoding", ErrMalformedHash)
	}

	return phc, nil
}

// parseParams reads "m=..,t=..,p=.." in any order. Each key must appear once.
func parseParams(s string) (HashParams, error) {
	var params HashParams
	seen := make(map[string]bool, 3)

	for _, pair := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return HashParams{}, fmt.Errorf("parameter %q is not a key=value pair", pair)
		}
		if seen[key] {
			return HashParams{}, fmt.Errorf("duplicate parameter %q", key)
		}
		seen[key] = true

		switch key {
		case "m":
			n, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return HashParams{}, fmt.Errorf("memory cost: %w", err)
			}
			params.Memory = uint32(n)
		case "t":
			n, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return HashParams{}, fmt.Errorf("time cost: %w", err)
			}
			params.Iterations = uint32(n)
		case "p":
			n, err := strconv.ParseUint(value, 10, 8)
			if err != nil {
				return HashParams{}, fmt.Errorf("parallelism: %w", err)
			}
			params.Parallelism = uint8(n)
		default:
			return HashParams{}, fmt.Errorf("unknown parameter %q", key)
		}
	}

	if len(seen) != 3 {
		return HashParams{}, fmt.Errorf("expected m, t and p parameters")
	}

	return params, params.Validate()
}

// String encodes the record back into PHC format.
func (p PHC) String() string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		p.Algorithm,
		p.Version,
		p.Params.Memory,
		p.Params.Iterations,
		p.Params.Parallelism,
		b64.EncodeToString(p.Salt),
		b64.EncodeToString(p.Digest),
	)
}

// derive computes the digest of password under the record's algorithm,
// parameters and salt, with the record's digest length.
func (p PHC) derive(password []byte) []byte {
	keyLen := uint32(len(p.Digest))
	if p.Algorithm == AlgorithmArgon2i {
		return argon2.Key(password, p.Salt, p.Params.Iterations, p.Params.Memory, p.Params.Parallelism, keyLen)
	}
	return argon2.IDKey(password, p.Salt, p.Params.Iterations, p.Params.Memory, p.Params.Parallelism, keyLen)
}
