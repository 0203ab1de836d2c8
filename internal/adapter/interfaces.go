// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the trade-journal REST API.
//
// [ServerAdapter] hides the transport from callers. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/trade-journal/models"
	"github.com/google/uuid"
)

// ServerAdapter talks to a trade-journal server.
type ServerAdapter interface {
	// SetCredentials stores the Basic credentials sent with requests that
	// require authentication. The adapter keeps its own copy of password.
	SetCredentials(username string, password models.Secret)

	// CreateUser registers a new user. Requires credentials.
	CreateUser(ctx context.Context, request models.UserRequest) (models.User, error)

	// GetUser fetches a user by id. Returns ErrNotFound for unknown ids.
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)

	// ListUsers fetches all visible users.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetServerVersion returns the version reported by the server.
	GetServerVersion(ctx context.Context) (string, error)

	// HealthCheck returns nil when the server answers its health endpoint.
	HealthCheck(ctx context.Context) error
}
