package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.ID,
		&user.Visible,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}

// FindCredentialsByUsername implements [UserRepository]. The lookup is an
// exact, case-sensitive match. A missing row is not an error.
func (r *userRepository) FindCredentialsByUsername(ctx context.Context, username string) (models.StoredCredential, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCredentialsByUsernameQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindCredentialsByUsername").Msg("error building query")
		return models.StoredCredential{}, false, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrBuildingSQLQuery, err)
	}

	var cred models.StoredCredential
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&cred.UserID, &cred.PasswordHash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.StoredCredential{}, false, nil
	case err != nil:
		log.Err(err).
			Str("func", "*userRepository.FindCredentialsByUsername").
			Bool("retryable", r.db.retryable(err)).
			Msg("error retrieving stored credentials")
		return models.StoredCredential{}, false, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingQuery, err)
	}

	return cred, true, nil
}

// CreateUser implements [UserRepository].
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other failure → wrapped [ErrStoreUnavailable].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrBuildingSQLQuery, err)
	}

	var created models.User
	if err = scanUser(r.db.QueryRowContext(ctx, query, args...), &created); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("username already exists")
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.retryable(err)).
			Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, err)
	}

	return created, nil
}

// GetUserByID implements [UserRepository].
func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = scanUser(r.db.QueryRowContext(ctx, query, args...), &user)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).
			Str("func", "*userRepository.GetUserByID").
			Bool("retryable", r.db.retryable(err)).
			Msg("error retrieving user")
		return models.User{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, err)
	}

	return user, nil
}

// ListUsers implements [UserRepository].
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.ListUsers").
			Bool("retryable", r.db.retryable(err)).
			Msg("error listing users")
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = scanUser(rows, &user); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user")
			return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error iterating users")
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRows, err)
	}

	return users, nil
}
