package sqlxrepos

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnplaygrow/backend/core/user"
)

func newMockRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestUserRepository_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec("INSERT INTO users").
			WillReturnResult(sqlmock.NewResult(0, 1))

		usr, err := repo.CreateUser(ctx, user.User{
			Name: "Alex", Email: "alex@example.com", Role: user.RoleStudent, CreatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, usr.ID) // id assigned by the repository
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to ErrEmailExists", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec("INSERT INTO users").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

		_, err := repo.CreateUser(ctx, user.User{Name: "Alex", Email: "alex@example.com", Role: user.RoleStudent})
		assert.Equal(t, user.ErrEmailExists, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	ctx := context.Background()
	cols := []string{"id", "name", "email", "password_hash", "role", "created_at"}

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Now().UTC()
		mock.ExpectQuery("FROM users WHERE email").
			WithArgs("alex@example.com").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("uid-1", "Alex", "alex@example.com", []byte("$2a$10$hash"), "student", now))

		usr, err := repo.GetUserByEmail(ctx, "alex@example.com")
		require.NoError(t, err)
		assert.Equal(t, "uid-1", usr.ID)
		assert.Equal(t, user.RoleStudent, usr.Role)
		assert.Equal(t, []byte("$2a$10$hash"), usr.PasswordHash)
		assert.Equal(t, now, usr.CreatedAt)
	})

	t.Run("no rows maps to ErrNotFound", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("FROM users WHERE email").
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows(cols))

		_, err := repo.GetUserByEmail(ctx, "nobody@example.com")
		assert.Equal(t, user.ErrNotFound, err)
	})
}

func TestUserRepository_GetUserByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("FROM users WHERE id").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_at"}))

	_, err := repo.GetUserByID(context.Background(), "nope")
	assert.Equal(t, user.ErrNotFound, err)
}
