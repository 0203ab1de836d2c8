// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "fmt"

// AuthErrorKind classifies why credential validation failed. The set is
// closed: callers switch on it exhaustively.
type AuthErrorKind int

const (
	// AuthErrorValidation means the request did not carry well-formed
	// credentials.
	AuthErrorValidation AuthErrorKind = iota + 1

	// AuthErrorAuthentication means the credentials were well-formed but did
	// not match. Unknown usernames and wrong passwords are indistinguishable.
	AuthErrorAuthentication

	// AuthErrorUnexpected means validation could not be completed: the store
	// was unavailable, a stored hash was corrupt or the verification pool
	// could not run the job in time.
	AuthErrorUnexpected
)

func (k AuthErrorKind) String() string {
	switch k {
	case AuthErrorValidation:
		return "validation"
	case AuthErrorAuthentication:
		return "authentication"
	case AuthErrorUnexpected:
		return "unexpected"
	default:
		return fmt.Sprintf("AuthErrorKind(%d)", int(k))
	}
}

// AuthError is the only error type returned by
// [AuthService.ValidateCredentials]. It unwraps to the underlying cause.
type AuthError struct {
	Kind AuthErrorKind
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return e.Kind.String() + " error"
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
