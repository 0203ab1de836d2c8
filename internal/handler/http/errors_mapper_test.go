// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/trade-journal/internal/crypto"
	"github.com/MKhiriev/trade-journal/internal/service"
	"github.com/MKhiriev/trade-journal/internal/store"
	"github.com/MKhiriev/trade-journal/internal/utils"
	"github.com/MKhiriev/trade-journal/internal/validators"
	"github.com/MKhiriev/trade-journal/internal/workers"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid json", ErrInvalidJSON, http.StatusBadRequest},
		{"invalid user id", fmt.Errorf("%w: bad uuid", ErrInvalidUserID), http.StatusBadRequest},
		{"invalid data", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmail), http.StatusBadRequest},
		{"username taken", fmt.Errorf("create: %w", store.ErrUsernameAlreadyExists), http.StatusConflict},
		{"user not found", store.ErrNoUserWasFound, http.StatusNotFound},
		{"store unavailable", store.ErrStoreUnavailable, http.StatusInternalServerError},
		{"pool exhausted", workers.ErrPoolExhausted, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesServerErrorDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)

	writeError(rec, req, fmt.Errorf("%w: dial tcp 10.0.0.7:5432: connection refused", store.ErrStoreUnavailable))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError)+"\n", rec.Body.String())
}

func TestWriteAuthError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantChallenge string
	}{
		{
			name:       "validation",
			err:        &service.AuthError{Kind: service.AuthErrorValidation, Err: utils.ErrMalformedHeader},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:          "wrong password",
			err:           &service.AuthError{Kind: service.AuthErrorAuthentication, Err: crypto.ErrVerificationFailed},
			wantStatus:    http.StatusUnauthorized,
			wantChallenge: `Basic realm="user"`,
		},
		{
			name:          "unknown username",
			err:           &service.AuthError{Kind: service.AuthErrorAuthentication, Err: service.ErrUnknownUsername},
			wantStatus:    http.StatusUnauthorized,
			wantChallenge: `Basic realm="user"`,
		},
		{
			name:       "unexpected",
			err:        &service.AuthError{Kind: service.AuthErrorUnexpected, Err: store.ErrStoreUnavailable},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unknown kind",
			err:        &service.AuthError{Kind: service.AuthErrorKind(42)},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "not an auth error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/users", nil)

			h.writeAuthError(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantChallenge, rec.Header().Get("WWW-Authenticate"))
			assert.Equal(t, http.StatusText(tt.wantStatus)+"\n", rec.Body.String())
		})
	}
}

// TestWriteAuthError_IdenticalBodies checks that an unknown username and a
// wrong password produce byte-identical responses.
func TestWriteAuthError_IdenticalBodies(t *testing.T) {
	h := newTestHandler()

	respond := func(cause error) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.writeAuthError(rec, httptest.NewRequest(http.MethodPost, "/users", nil),
			&service.AuthError{Kind: service.AuthErrorAuthentication, Err: cause})
		return rec
	}

	unknown := respond(fmt.Errorf("%w: %w", service.ErrUnknownUsername, crypto.ErrVerificationFailed))
	wrong := respond(crypto.ErrVerificationFailed)

	assert.Equal(t, wrong.Code, unknown.Code)
	assert.Equal(t, wrong.Header(), unknown.Header())
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}
