package repository

import (
	"context"

	"gorm.io/gorm"

	"adboard/internal/domain"
)

type FavoriteRepository interface {
	// Add ensures a favorite exists and reports whether it was newly created.
	Add(ctx context.Context, userID, advertisementID int64) (bool, error)
	// Remove deletes the favorite if present; absence is not an error.
	Remove(ctx context.Context, userID, advertisementID int64) error
	Exists(ctx context.Context, userID, advertisementID int64) (bool, error)
	// FavoritedSet reports which of the given advertisement ids the user has
	// favorited, for batch is_favorited resolution on lists.
	FavoritedSet(ctx context.Context, userID int64, advertisementIDs []int64) (map[int64]bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, userID, advertisementID int64) (bool, error) {
	exists, err := r.Exists(ctx, userID, advertisementID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	favorite := &domain.Favorite{
		UserID:          userID,
		AdvertisementID: advertisementID,
	}

	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		// Проигравший гонку concurrent-add упирается в уникальный индекс —
		// для него это "уже в избранном", а не ошибка.
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, advertisementID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND advertisement_id = ?", userID, advertisementID).
		Delete(&domain.Favorite{}).Error
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, advertisementID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ? AND advertisement_id = ?", userID, advertisementID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) FavoritedSet(ctx context.Context, userID int64, advertisementIDs []int64) (map[int64]bool, error) {
	set := make(map[int64]bool, len(advertisementIDs))
	if userID == 0 || len(advertisementIDs) == 0 {
		return set, nil
	}

	var ids []int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ? AND advertisement_id IN ?", userID, advertisementIDs).
		Pluck("advertisement_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
