package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername           = errors.New("username is empty")
	ErrUsernameTooLong         = errors.New("username is too long")
	ErrUsernameForbiddenSymbol = errors.New("username contains a forbidden character")
	ErrInvalidEmail            = errors.New("invalid email address")
	ErrEmptyPassword           = errors.New("password is empty")
)
