package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/trade-journal/models"
	"github.com/google/uuid"
)

// UserRepository is the persistence boundary for user accounts.
type UserRepository interface {
	// FindCredentialsByUsername returns the id and stored password hash of
	// the visible user with exactly this username. found is false, with a nil
	// error, when no such user exists. Any other failure wraps
	// [ErrStoreUnavailable].
	FindCredentialsByUsername(ctx context.Context, username string) (cred models.StoredCredential, found bool, err error)

	// CreateUser inserts user and returns the stored row. A taken username
	// yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUserByID returns the visible user with this id or [ErrNoUserWasFound].
	GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error)

	// ListUsers returns every visible user ordered by creation time.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
