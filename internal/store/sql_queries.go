package store

import (
	"strings"

	"github.com/MKhiriev/trade-journal/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the column order every user scan expects.
var userColumns = []string{
	"id",
	"visible",
	"username",
	"email",
	"password_hash",
	"created_at",
	"updated_at",
}

var usersTable = models.User{}.TableName()

// buildFindCredentialsByUsernameQuery selects the id and password hash of
// the visible user whose username matches exactly.
func buildFindCredentialsByUsernameQuery(username string) (string, []any, error) {
	return psql.
		Select("id", "password_hash").
		From(usersTable).
		Where(sq.Eq{"username": username, "visible": true}).
		Limit(1).
		ToSql()
}

// buildCreateUserQuery inserts user and returns the stored row.
// visible, created_at and updated_at come from column defaults.
func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(usersTable).
		Columns("id", "username", "email", "password_hash").
		Values(user.ID, user.Username, user.Email, user.PasswordHash).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildGetUserByIDQuery(id uuid.UUID) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id, "visible": true}).
		ToSql()
}

func buildListUsersQuery() (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"visible": true}).
		OrderBy("created_at", "id").
		ToSql()
}
