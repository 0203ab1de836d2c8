package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/trade-journal/internal/crypto"
	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/store"
	"github.com/MKhiriev/trade-journal/internal/utils"
	"github.com/MKhiriev/trade-journal/internal/workers"
	"github.com/MKhiriev/trade-journal/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository looks up the stored hash for a username.
	userRepository store.UserRepository

	// hasher verifies candidates and provides the fallback hash.
	hasher crypto.PasswordHasher

	// offloader runs verification away from the request goroutine.
	offloader workers.Offloader

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The returned service holds no
// per-request state and is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, offloader workers.Offloader, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		offloader:      offloader,
		logger:         logger,
	}
}

// ValidateCredentials implements AuthService.
//
// A password hash is verified exactly once per call that gets past header
// parsing: the stored hash when the username exists, the fallback hash
// otherwise. Both paths therefore cost the same. The candidate password is
// wiped before returning.
func (a *authService) ValidateCredentials(ctx context.Context, header string) (models.VerifiedIdentity, error) {
	log := logger.FromContext(ctx)

	credentials, err := utils.ParseBasicAuth(header)
	if err != nil {
		log.Debug().Err(err).Msg("rejecting authorization header")
		return models.VerifiedIdentity{}, &AuthError{Kind: AuthErrorValidation, Err: err}
	}
	defer credentials.Password.Wipe()

	stored, found, err := a.userRepository.FindCredentialsByUsername(ctx, credentials.Username)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("failed to retrieve stored credentials")
		return models.VerifiedIdentity{}, &AuthError{
			Kind: AuthErrorUnexpected,
			Err:  fmt.Errorf("failed to retrieve stored credentials: %w", err),
		}
	}

	encoded := stored.PasswordHash
	if !found {
		encoded = a.hasher.FallbackHash()
	}

	// the job owns its copy: it may outlive this call if ctx ends first
	candidate := models.NewSecretFromBytes(credentials.Password.Expose())
	_, err = workers.Do(ctx, a.offloader, func() (struct{}, error) {
		defer candidate.Wipe()
		return struct{}{}, a.hasher.VerifyPassword(candidate, encoded)
	})

	switch {
	case errors.Is(err, crypto.ErrVerificationFailed):
		if !found {
			err = fmt.Errorf("%w: %w", ErrUnknownUsername, err)
		}
		log.Info().Err(err).Str("username", credentials.Username).Msg("authentication failed")
		return models.VerifiedIdentity{}, &AuthError{Kind: AuthErrorAuthentication, Err: err}

	case err != nil:
		log.Err(err).
			Str("username", credentials.Username).
			Bool("fallback", !found).
			Msg("password verification could not be completed")
		return models.VerifiedIdentity{}, &AuthError{
			Kind: AuthErrorUnexpected,
			Err:  fmt.Errorf("failed to validate credentials: %w", err),
		}

	case !found:
		// the fallback hash has no owner, even if it matched
		log.Info().Str("username", credentials.Username).Msg("authentication failed: unknown username")
		return models.VerifiedIdentity{}, &AuthError{Kind: AuthErrorAuthentication, Err: ErrUnknownUsername}
	}

	if a.hasher.NeedsRehash(stored.PasswordHash) {
		log.Info().Str("user_id", stored.UserID.String()).Msg("stored password hash uses outdated parameters")
	}

	return models.VerifiedIdentity{UserID: stored.UserID}, nil
}
