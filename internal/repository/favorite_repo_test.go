package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/domain"
)

func TestFavoriteRepository_AddIsIdempotent(t *testing.T) {
	db := setupDB(t)
	favorites := NewFavoriteRepository(db)

	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)
	ad := createAd(t, db, alice.ID, "ad", domain.StatusOpen)

	created, err := favorites.Add(ctx(), bob.ID, ad.ID)
	require.NoError(t, err)
	assert.True(t, created)

	// Повторное добавление — не ошибка и не вторая запись
	created, err = favorites.Add(ctx(), bob.ID, ad.ID)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, db.Model(&domain.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFavoriteRepository_UniqueIndexCatchesRaceLoser(t *testing.T) {
	db := setupDB(t)
	favorites := NewFavoriteRepository(db)

	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)
	ad := createAd(t, db, alice.ID, "ad", domain.StatusOpen)

	// Вставляем запись напрямую, имитируя победителя гонки,
	// проскочившего между Exists и Create.
	require.NoError(t, db.Create(&domain.Favorite{UserID: bob.ID, AdvertisementID: ad.ID}).Error)

	err := db.Create(&domain.Favorite{UserID: bob.ID, AdvertisementID: ad.ID}).Error
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))

	created, err := favorites.Add(ctx(), bob.ID, ad.ID)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestFavoriteRepository_RemoveIsNoopWhenAbsent(t *testing.T) {
	db := setupDB(t)
	favorites := NewFavoriteRepository(db)

	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)
	ad := createAd(t, db, alice.ID, "ad", domain.StatusOpen)

	assert.NoError(t, favorites.Remove(ctx(), bob.ID, ad.ID))

	_, err := favorites.Add(ctx(), bob.ID, ad.ID)
	require.NoError(t, err)
	assert.NoError(t, favorites.Remove(ctx(), bob.ID, ad.ID))

	exists, err := favorites.Exists(ctx(), bob.ID, ad.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFavoriteRepository_FavoritedSet(t *testing.T) {
	db := setupDB(t)
	favorites := NewFavoriteRepository(db)

	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)

	ad1 := createAd(t, db, alice.ID, "ad1", domain.StatusOpen)
	ad2 := createAd(t, db, alice.ID, "ad2", domain.StatusOpen)
	ad3 := createAd(t, db, alice.ID, "ad3", domain.StatusOpen)

	_, err := favorites.Add(ctx(), bob.ID, ad1.ID)
	require.NoError(t, err)
	_, err = favorites.Add(ctx(), bob.ID, ad3.ID)
	require.NoError(t, err)

	set, err := favorites.FavoritedSet(ctx(), bob.ID, []int64{ad1.ID, ad2.ID, ad3.ID})
	require.NoError(t, err)
	assert.True(t, set[ad1.ID])
	assert.False(t, set[ad2.ID])
	assert.True(t, set[ad3.ID])

	// Аноним (нулевой id) — пустой набор без запроса
	set, err = favorites.FavoritedSet(ctx(), 0, []int64{ad1.ID})
	require.NoError(t, err)
	assert.Empty(t, set)
}
