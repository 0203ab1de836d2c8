package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/trade-journal/models"
	"github.com/rivo/uniseg"
)

// Field name constants used to restrict validation of a [models.UserRequest]
// to a subset of its fields.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// MaxUsernameLength is the limit on a username, counted in user-perceived
// characters (grapheme clusters) rather than bytes or runes.
const MaxUsernameLength = 256

// forbiddenUsernameCharacters may never appear in a username.
const forbiddenUsernameCharacters = `/()"<>\{}`

// UserValidator implements [Validator] for user registration requests.
type UserValidator struct{}

// NewUserValidator constructs a UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks a models.UserRequest (value or pointer). When no fields are
// given, username, email and password are all validated.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserRequest:
		return v.validateUserRequest(ctx, value, fields...)
	case *models.UserRequest:
		return v.validateUserRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUserRequest(_ context.Context, request models.UserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(request.Username); err != nil {
				return err
			}
		case FieldEmail:
			if err := validateEmail(request.Email); err != nil {
				return err
			}
		case FieldPassword:
			if request.Password.IsEmpty() {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}

	if n := uniseg.GraphemeClusterCount(username); n > MaxUsernameLength {
		return fmt.Errorf("%w: %d characters, at most %d allowed", ErrUsernameTooLong, n, MaxUsernameLength)
	}

	if i := strings.IndexAny(username, forbiddenUsernameCharacters); i >= 0 {
		return fmt.Errorf("%w: %q", ErrUsernameForbiddenSymbol, username[i])
	}

	return nil
}

// validateEmail accepts a bare RFC 5322 address. Display names
// ("Alice <alice@example.com>") are rejected.
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}
	if addr.Name != "" || addr.Address != email || !strings.Contains(addr.Address, "@") {
		return ErrInvalidEmail
	}

	return nil
}
