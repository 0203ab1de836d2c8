// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"io"
)

const redacted = "[REDACTED]"

// Secret holds a sensitive value such as a plaintext password.
//
// Every textual representation of a Secret (fmt verbs, JSON, text encoding,
// zerolog's Any/Interface) renders as "[REDACTED]". The only way to read the
// value is [Secret.Expose], which keeps every read explicit and greppable.
// Copies of a Secret share the same backing buffer, so [Secret.Wipe] on any
// copy scrubs them all.
type Secret struct {
	value []byte
}

// NewSecret wraps value into a Secret.
func NewSecret(value string) Secret {
	return Secret{value: []byte(value)}
}

// NewSecretFromBytes copies value into a new Secret. The caller may wipe
// value afterwards without affecting the Secret.
func NewSecretFromBytes(value []byte) Secret {
	return Secret{value: append([]byte(nil), value...)}
}

// Expose returns the underlying bytes. The slice must not be retained
// after the Secret is wiped.
func (s Secret) Expose() []byte {
	return s.value
}

// IsEmpty reports whether the secret holds no bytes.
func (s Secret) IsEmpty() bool {
	return len(s.value) == 0
}

// Wipe zeroes the backing buffer.
func (s Secret) Wipe() {
	clear(s.value)
}

// String implements fmt.Stringer.
func (s Secret) String() string {
	return redacted
}

// GoString implements fmt.GoStringer so %#v is redacted as well.
func (s Secret) GoString() string {
	return redacted
}

// Format implements fmt.Formatter. It covers verbs that bypass String,
// such as %x and %q.
func (s Secret) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, redacted)
}

// MarshalJSON implements json.Marshaler.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(redacted)
}

// MarshalText implements encoding.TextMarshaler.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

// UnmarshalJSON reads a JSON string into the secret. It lets request bodies
// carry a password without the value ever living in a plain string field.
func (s *Secret) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	s.value = []byte(v)
	return nil
}
