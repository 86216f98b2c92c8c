package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	authdomain "gauth-backend/internal/auth/domain"
	"gauth-backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteConnection(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func googleUser(sub, email string) *authdomain.User {
	return authdomain.NewGoogleUser(&authdomain.IdentityClaim{
		Subject: sub,
		Email:   email,
		Name:    "Name " + sub,
		Picture: "http://p/" + sub,
	})
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := googleUser("g1", "a@x.com")
	require.NoError(t, repo.Create(ctx, user))
	require.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, authdomain.ProviderGoogle, byEmail.Provider)
	assert.Equal(t, "g1", byEmail.ProviderID)
	assert.Equal(t, "Name g1", byEmail.Name)
	assert.Equal(t, "http://p/g1", byEmail.Picture)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "a@x.com", byID.Email)
}

func TestUserRepository_AbsentIsNotAnError(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user, err := repo.FindByEmail(ctx, "nobody@x.com")
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.FindByID(ctx, "missing-id")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_StoreErrorIsNotAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	user, err := repo.FindByEmail(context.Background(), "a@x.com")
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_UniqueConstraints(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, googleUser("g1", "a@x.com")))

	assert.Error(t, repo.Create(ctx, googleUser("g2", "a@x.com")), "duplicate email")
	assert.Error(t, repo.Create(ctx, googleUser("g1", "b@x.com")), "duplicate provider subject")
}

func TestRefreshTokenRepository_MultipleSessionsPerUser(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	tokens := NewRefreshTokenRepository(db)

	user := googleUser("g1", "a@x.com")
	require.NoError(t, users.Create(ctx, user))

	first := time.Now().Add(-time.Minute)
	require.NoError(t, tokens.Save(ctx, &authdomain.RefreshToken{
		UserID:    user.ID,
		Token:     "rt-1",
		ExpiresAt: first.Add(authdomain.RefreshTokenValidity),
		CreatedAt: first,
	}))
	second := &authdomain.RefreshToken{
		UserID:    user.ID,
		Token:     "rt-2",
		ExpiresAt: time.Now().Add(authdomain.RefreshTokenValidity),
	}
	require.NoError(t, tokens.Save(ctx, second))
	assert.NotEmpty(t, second.ID)

	saved, err := tokens.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "rt-2", saved[0].Token)
	assert.Equal(t, "rt-1", saved[1].Token)

	none, err := tokens.FindByUserID(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, none)
}
