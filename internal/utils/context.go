// Package utils provides general-purpose helpers used across the
// application: context keys, Basic authorization header handling, JSON
// response writing and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/trade-journal/models"
)

// contextKey is a private type for context keys, so values stored by this
// package never collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the verified identity of the caller
// is stored in the request context.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.VerifiedIdentity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// IdentityFromContext returns the verified identity stored in ctx.
//
//   - ok == true: an identity was stored with [WithIdentity]
//   - ok == false: the request was not authenticated
func IdentityFromContext(ctx context.Context) (models.VerifiedIdentity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.VerifiedIdentity)
	return identity, ok
}
