package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/auth/usecase"
)

func createUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	u := &entity.User{Email: email, Name: "Owner", Password: "hash"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func TestProfileGorm_Create(t *testing.T) {
	t.Run("creates profile for existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProfileRepository(db)
		owner := createUser(t, db, "owner@example.com")

		p := &entity.Profile{Bio: "hello", UserID: owner.ID}
		err := repo.Create(context.Background(), p)

		require.NoError(t, err)
		assert.NotZero(t, p.ID)
	})

	t.Run("second profile for same user is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProfileRepository(db)
		owner := createUser(t, db, "owner@example.com")

		require.NoError(t, repo.Create(context.Background(), &entity.Profile{Bio: "one", UserID: owner.ID}))
		err := repo.Create(context.Background(), &entity.Profile{Bio: "two", UserID: owner.ID})

		assert.ErrorIs(t, err, usecase.ErrProfileAlreadyExists)
	})

	t.Run("profile without user is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProfileRepository(db)

		err := repo.Create(context.Background(), &entity.Profile{Bio: "orphan", UserID: 12345})

		assert.Error(t, err)
	})

	t.Run("nil profile", func(t *testing.T) {
		db := setupTestDB(t)

		assert.Error(t, NewProfileRepository(db).Create(context.Background(), nil))
	})
}

func TestProfileGorm_FindByUserID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProfileRepository(db)
		owner := createUser(t, db, "owner@example.com")
		other := createUser(t, db, "other@example.com")
		require.NoError(t, repo.Create(context.Background(), &entity.Profile{Bio: "owner bio", UserID: owner.ID}))
		require.NoError(t, repo.Create(context.Background(), &entity.Profile{Bio: "other bio", UserID: other.ID}))

		found, err := repo.FindByUserID(context.Background(), other.ID)

		require.NoError(t, err)
		assert.Equal(t, "other bio", found.Bio)
		assert.Equal(t, other.ID, found.UserID)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDB(t)

		found, err := NewProfileRepository(db).FindByUserID(context.Background(), 42)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrProfileNotFound)
	})
}
