// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/trade-journal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_buildFindCredentialsByUsernameQuery(t *testing.T) {
	query, args, err := buildFindCredentialsByUsernameQuery("alice")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.True(t, strings.HasPrefix(q, "select id, password_hash from users"))
	require.Contains(t, q, "username = $1")
	require.Contains(t, q, "visible = $2")
	require.Contains(t, q, "limit 1")

	// only the hash is selected, never the whole row
	require.NotContains(t, q, "email")

	require.Equal(t, []any{"alice", true}, args)
}

func Test_buildCreateUserQuery(t *testing.T) {
	id := uuid.New()
	query, args, err := buildCreateUserQuery(models.User{
		ID:           id,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "values ($1,$2,$3,$4)")
	require.Contains(t, q, "returning "+strings.Join(userColumns, ", "))

	require.Equal(t, []any{id, "alice", "alice@example.com", "hash"}, args)
}

func Test_buildGetUserByIDQuery(t *testing.T) {
	id := uuid.New()
	query, args, err := buildGetUserByIDQuery(id)
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, col := range userColumns {
		require.Contains(t, q, col, "query should contain column %q", col)
	}
	require.Contains(t, q, "where id = $1 and visible = $2")

	// squirrel resolves driver.Valuer, so the id travels in its text form
	require.Equal(t, []any{id.String(), true}, args)
}

func Test_buildListUsersQuery(t *testing.T) {
	query, args, err := buildListUsersQuery()
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from users where visible = $1")
	require.True(t, strings.HasSuffix(q, "order by created_at, id"))
	require.Equal(t, []any{true}, args)
}
