// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/trade-journal/models"
)

// BasicScheme is the case-sensitive prefix of a Basic authorization header.
const BasicScheme = "Basic "

// ErrMalformedHeader is returned by [ParseBasicAuth] for any header that does
// not carry well-formed Basic credentials.
var ErrMalformedHeader = errors.New("malformed authorization header")

// ParseBasicAuth extracts credentials from a raw "Authorization" header value
// of the form "Basic base64(username:password)".
//
// The decoded text is split on the first ':' only, so passwords may contain
// colons. Every failure wraps [ErrMalformedHeader]; error messages never
// include the decoded payload.
func ParseBasicAuth(header string) (models.Credentials, error) {
	if header == "" {
		return models.Credentials{}, fmt.Errorf("%w: the 'Authorization' header was missing", ErrMalformedHeader)
	}

	if !utf8.ValidString(header) {
		return models.Credentials{}, fmt.Errorf("%w: the 'Authorization' header was not a valid UTF-8 string", ErrMalformedHeader)
	}

	encoded, ok := strings.CutPrefix(header, BasicScheme)
	if !ok {
		return models.Credentials{}, fmt.Errorf("%w: the authorization scheme was not 'Basic'", ErrMalformedHeader)
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("%w: failed to base64-decode 'Basic' credentials", ErrMalformedHeader)
	}
	defer clear(decoded)

	if !utf8.Valid(decoded) {
		return models.Credentials{}, fmt.Errorf("%w: the decoded credential string is not valid UTF-8", ErrMalformedHeader)
	}

	username, password, found := bytes.Cut(decoded, []byte{':'})
	if !found {
		return models.Credentials{}, fmt.Errorf("%w: a password must be provided in 'Basic' auth", ErrMalformedHeader)
	}

	return models.Credentials{
		Username: string(username),
		Password: models.NewSecretFromBytes(password),
	}, nil
}

// BasicAuthHeader builds a header value for username and password. It is
// the inverse of [ParseBasicAuth].
func BasicAuthHeader(username string, password models.Secret) string {
	raw := make([]byte, 0, len(username)+1+len(password.Expose()))
	raw = append(raw, username...)
	raw = append(raw, ':')
	raw = append(raw, password.Expose()...)
	defer clear(raw)

	return BasicScheme + base64.StdEncoding.EncodeToString(raw)
}
