package service

import (
	"context"

	"github.com/MKhiriev/trade-journal/models"
	"github.com/google/uuid"
)

// AuthService turns a raw Authorization header into a verified identity.
type AuthService interface {
	// ValidateCredentials parses header as HTTP Basic credentials and checks
	// them against the stored password hash. Every failure is an *AuthError.
	ValidateCredentials(ctx context.Context, header string) (models.VerifiedIdentity, error)
}

// UserService manages user accounts.
type UserService interface {
	CreateUser(ctx context.Context, request models.UserRequest) (models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// AppInfoService exposes build and deployment details of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
