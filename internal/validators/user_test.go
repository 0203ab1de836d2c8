// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/trade-journal/models"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validUserRequest() models.UserRequest {
	return models.UserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: models.NewSecret("correct horse battery staple"),
	}
}

// ---------------------------------------------------------------------------
// TestUserValidator_Dispatch
// ---------------------------------------------------------------------------

func TestUserValidator_Dispatch(t *testing.T) {
	v := NewUserValidator()
	require.NotNil(t, v)
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validUserRequest()))
	})

	t.Run("pointer", func(t *testing.T) {
		req := validUserRequest()
		require.NoError(t, v.Validate(ctx, &req))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, validUserRequest(), "nickname")
		require.ErrorIs(t, err, ErrUnknownField)
	})

	t.Run("field scoping skips other fields", func(t *testing.T) {
		req := validUserRequest()
		req.Email = "not an email"
		require.NoError(t, v.Validate(ctx, req, FieldUsername, FieldPassword))
	})
}

// ---------------------------------------------------------------------------
// TestUserValidator_Username
// ---------------------------------------------------------------------------

func TestUserValidator_Username(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{name: "plain", username: "alice"},
		{name: "unicode", username: "ÀliceБоб"},
		{name: "exactly max graphemes", username: strings.Repeat("ё", MaxUsernameLength)},
		{name: "combining marks count once", username: strings.Repeat("e\u0301", MaxUsernameLength)},
		{name: "empty", username: "", wantErr: ErrEmptyUsername},
		{name: "whitespace only", username: " \t\n", wantErr: ErrEmptyUsername},
		{name: "too long", username: strings.Repeat("a", MaxUsernameLength+1), wantErr: ErrUsernameTooLong},
		{name: "slash", username: "ali/ce", wantErr: ErrUsernameForbiddenSymbol},
		{name: "parenthesis", username: "alice(", wantErr: ErrUsernameForbiddenSymbol},
		{name: "quote", username: `ali"ce`, wantErr: ErrUsernameForbiddenSymbol},
		{name: "angle bracket", username: "<script>", wantErr: ErrUsernameForbiddenSymbol},
		{name: "backslash", username: `a\b`, wantErr: ErrUsernameForbiddenSymbol},
		{name: "brace", username: "{alice}", wantErr: ErrUsernameForbiddenSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUserRequest()
			req.Username = tt.username

			err := v.Validate(ctx, req, FieldUsername)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUserValidator_Email
// ---------------------------------------------------------------------------

func TestUserValidator_Email(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "plain", email: "alice@example.com"},
		{name: "plus tag", email: "alice+journal@example.co.uk"},
		{name: "empty", email: "", wantErr: true},
		{name: "missing at", email: "alice.example.com", wantErr: true},
		{name: "missing domain", email: "alice@", wantErr: true},
		{name: "display name", email: "Alice <alice@example.com>", wantErr: true},
		{name: "surrounding spaces", email: " alice@example.com ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUserRequest()
			req.Email = tt.email

			err := v.Validate(ctx, req, FieldEmail)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidEmail)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUserValidator_Email_Generated(t *testing.T) {
	v := NewUserValidator()
	faker := gofakeit.New(7)

	for range 50 {
		req := validUserRequest()
		req.Email = faker.Email()
		assert.NoError(t, v.Validate(context.Background(), req, FieldEmail), req.Email)
	}
}

// ---------------------------------------------------------------------------
// TestUserValidator_Password
// ---------------------------------------------------------------------------

func TestUserValidator_Password(t *testing.T) {
	v := NewUserValidator()

	req := validUserRequest()
	req.Password = models.NewSecret("")

	err := v.Validate(context.Background(), req)
	require.ErrorIs(t, err, ErrEmptyPassword)
}
