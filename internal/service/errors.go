package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrUnknownUsername       = errors.New("unknown username")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
