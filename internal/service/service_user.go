package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/trade-journal/internal/crypto"
	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/store"
	"github.com/MKhiriev/trade-journal/internal/utils"
	"github.com/MKhiriev/trade-journal/internal/validators"
	"github.com/MKhiriev/trade-journal/internal/workers"
	"github.com/MKhiriev/trade-journal/models"
	"github.com/google/uuid"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	offloader      workers.Offloader
	validator      validators.Validator
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

// NewUserService constructs a UserService. Passwords are hashed on offloader.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, offloader workers.Offloader, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		offloader:      offloader,
		validator:      validators.NewUserValidator(),
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreateUser validates request, hashes its password and stores the new
// account. The password in request is wiped before returning.
//
// Returns the stored user or:
//   - ErrInvalidDataProvided wrapping the validator error.
//   - store.ErrUsernameAlreadyExists if the username is taken.
//   - workers.ErrOffloadFailed if the password could not be hashed in time.
func (u *userService) CreateUser(ctx context.Context, request models.UserRequest) (models.User, error) {
	log := logger.FromContext(ctx)
	defer request.Password.Wipe()

	if err := u.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("username", request.Username).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	password := models.NewSecretFromBytes(request.Password.Expose())
	hash, err := workers.Do(ctx, u.offloader, func() (string, error) {
		defer password.Wipe()
		return u.hasher.HashPassword(password)
	})
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           u.ids.Generate(),
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hash,
	}

	created, err := u.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	event := log.Info().Str("user_id", created.ID.String())
	if creator, ok := utils.IdentityFromContext(ctx); ok {
		event = event.Str("created_by", creator.UserID.String())
	}
	event.Msg("user created")

	return created, nil
}

// GetUser returns the visible user with id or store.ErrNoUserWasFound.
func (u *userService) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	user, err := u.userRepository.GetUserByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", id.String()).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// ListUsers returns every visible user.
func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}
