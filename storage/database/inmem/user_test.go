package inmemdb

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnplaygrow/backend/core/user"
)

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	usr, err := repo.CreateUser(ctx, user.User{Name: "Alex", Email: "alex@example.com", Role: user.RoleStudent})
	require.NoError(t, err)
	assert.NotEmpty(t, usr.ID)

	t.Run("duplicate email fails without mutating the store", func(t *testing.T) {
		_, err := repo.CreateUser(ctx, user.User{Name: "Other", Email: "alex@example.com", Role: user.RoleTeacher})
		assert.Equal(t, user.ErrEmailExists, err)

		got, err := repo.GetUserByEmail(ctx, "alex@example.com")
		require.NoError(t, err)
		assert.Equal(t, usr.ID, got.ID)
		assert.Equal(t, "Alex", got.Name)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetUserByID(ctx, usr.ID)
		require.NoError(t, err)
		assert.Equal(t, usr.Email, got.Email)

		_, err = repo.GetUserByID(ctx, "nope")
		assert.Equal(t, user.ErrNotFound, err)
	})

	t.Run("get by email", func(t *testing.T) {
		_, err := repo.GetUserByEmail(ctx, "nobody@example.com")
		assert.Equal(t, user.ErrNotFound, err)
	})
}

func TestUserRepository_concurrentSignupRace(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	const n = 16
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateUser(ctx, user.User{Name: "Racer", Email: "race@example.com", Role: user.RoleStudent})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var created, rejected int
	for err := range errs {
		switch err {
		case nil:
			created++
		case user.ErrEmailExists:
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, n-1, rejected)
}
