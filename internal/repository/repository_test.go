package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"adboard/internal/database"
	"adboard/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db), "Failed to migrate test database")

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, isAdmin bool) *domain.User {
	t.Helper()

	u := &domain.User{Username: username, PasswordHash: "x", IsAdmin: isAdmin}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createAd(t *testing.T, db *gorm.DB, creatorID int64, title string, status domain.AdStatus) *domain.Advertisement {
	t.Helper()

	ad := &domain.Advertisement{Title: title, Status: status, CreatorID: creatorID}
	require.NoError(t, db.Create(ad).Error)
	return ad
}

func ctx() context.Context { return context.Background() }
