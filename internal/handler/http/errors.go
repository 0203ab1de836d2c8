// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidUserID is reported when the user_id path parameter is not
	// a UUID.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidGzipBody is reported when a request declares gzip encoding
	// but the body is not valid gzip data.
	ErrInvalidGzipBody = errors.New("invalid gzip data")
)
