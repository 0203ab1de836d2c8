// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/trade-journal/models"
	"github.com/google/uuid"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestIdentityCtxKey(t *testing.T) {
	if IdentityCtxKey.String() != "identity" {
		t.Errorf("expected 'identity', got '%s'", IdentityCtxKey.String())
	}
}

func TestIdentityFromContext_Success(t *testing.T) {
	id := uuid.New()
	ctx := WithIdentity(context.Background(), models.VerifiedIdentity{UserID: id})

	identity, ok := IdentityFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if identity.UserID != id {
		t.Errorf("expected user id %s, got %s", id, identity.UserID)
	}
}

func TestIdentityFromContext_Missing(t *testing.T) {
	identity, ok := IdentityFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if identity.UserID != uuid.Nil {
		t.Errorf("expected nil uuid, got %s", identity.UserID)
	}
}

func TestIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "not-an-identity")

	if _, ok := IdentityFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestIdentityFromContext_PlainStringKeyDoesNotCollide(t *testing.T) {
	//nolint:staticcheck // a plain string key on purpose
	ctx := context.WithValue(context.Background(), "identity", models.VerifiedIdentity{UserID: uuid.New()})

	if _, ok := IdentityFromContext(ctx); ok {
		t.Fatal("expected ok=false for a plain string key, got true")
	}
}
