package advertisement

import (
	"context"

	"adboard/internal/domain"
	"adboard/internal/repository"
)

// AdvertisementRepository defines the storage operations this module needs.
type AdvertisementRepository interface {
	Create(ctx context.Context, ad *domain.Advertisement) error
	Save(ctx context.Context, ad *domain.Advertisement) error
	Delete(ctx context.Context, id int64) error
	GetVisibleByID(ctx context.Context, caller domain.Caller, id int64) (*domain.Advertisement, error)
	List(ctx context.Context, caller domain.Caller, f repository.AdvertisementFilter, limit, offset int) ([]domain.Advertisement, int64, error)
	CountOpenByCreator(ctx context.Context, creatorID, excludeID int64) (int64, error)
}

// FavoriteRepository defines the favorite storage operations this module needs.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, advertisementID int64) (bool, error)
	Remove(ctx context.Context, userID, advertisementID int64) error
	Exists(ctx context.Context, userID, advertisementID int64) (bool, error)
	FavoritedSet(ctx context.Context, userID int64, advertisementIDs []int64) (map[int64]bool, error)
}
