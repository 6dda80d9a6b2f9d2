package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"adboard/internal/domain"
)

// AdvertisementFilter is the statically enumerated filter set for list
// requests. Nil / zero fields mean "no restriction"; set fields combine
// with AND on top of the caller's visibility scope.
type AdvertisementFilter struct {
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	CreatorID     *int64
	Status        *domain.AdStatus
	// FavoriteOf restricts to advertisements favorited by this user id.
	// Zero is a pass-through ("not favorited" is not supported).
	FavoriteOf int64
}

type AdvertisementRepository interface {
	Create(ctx context.Context, ad *domain.Advertisement) error
	Save(ctx context.Context, ad *domain.Advertisement) error
	Delete(ctx context.Context, id int64) error
	GetVisibleByID(ctx context.Context, caller domain.Caller, id int64) (*domain.Advertisement, error)
	List(ctx context.Context, caller domain.Caller, f AdvertisementFilter, limit, offset int) ([]domain.Advertisement, int64, error)
	CountOpenByCreator(ctx context.Context, creatorID, excludeID int64) (int64, error)
}

type advertisementRepository struct {
	db *gorm.DB
}

func NewAdvertisementRepository(db *gorm.DB) AdvertisementRepository {
	return &advertisementRepository{db: db}
}

func (r *advertisementRepository) Create(ctx context.Context, ad *domain.Advertisement) error {
	if err := r.db.WithContext(ctx).Create(ad).Error; err != nil {
		return err
	}
	// Подгружаем автора для ответа
	return r.db.WithContext(ctx).Preload("Creator").First(ad, ad.ID).Error
}

func (r *advertisementRepository) Save(ctx context.Context, ad *domain.Advertisement) error {
	if err := r.db.WithContext(ctx).Save(ad).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Creator").First(ad, ad.ID).Error
}

// Delete removes the advertisement together with its favorites. The favorites
// delete is explicit because sqlite does not enforce FK cascades by default.
func (r *advertisementRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("advertisement_id = ?", id).Delete(&domain.Favorite{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Advertisement{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// GetVisibleByID loads an advertisement within the caller's visibility scope.
// A DRAFT the caller may not see comes back as ErrNotFound, identical to a
// genuine absence.
func (r *advertisementRepository) GetVisibleByID(ctx context.Context, caller domain.Caller, id int64) (*domain.Advertisement, error) {
	var ad domain.Advertisement
	q := r.db.WithContext(ctx).Scopes(visibilityScope(caller)).Preload("Creator")
	if err := q.First(&ad, "advertisements.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ad, nil
}

func (r *advertisementRepository) List(ctx context.Context, caller domain.Caller, f AdvertisementFilter, limit, offset int) ([]domain.Advertisement, int64, error) {
	var ads []domain.Advertisement
	var total int64

	base := r.db.WithContext(ctx).Model(&domain.Advertisement{}).
		Scopes(visibilityScope(caller), filterScope(f))

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).
		Scopes(visibilityScope(caller), filterScope(f)).
		Preload("Creator").
		Order("advertisements.created_at DESC")

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Find(&ads).Error; err != nil {
		return nil, 0, err
	}

	return ads, total, nil
}

// CountOpenByCreator counts the creator's OPEN advertisements, excluding
// excludeID so a record does not count against itself on update. The check
// built on top of this is read-then-write with no lock: two concurrent
// creations can transiently exceed the limit, which is accepted best-effort
// behavior, not a hard guarantee.
func (r *advertisementRepository) CountOpenByCreator(ctx context.Context, creatorID, excludeID int64) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&domain.Advertisement{}).
		Where("creator_id = ? AND status = ?", creatorID, domain.StatusOpen)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count, err
}

// visibilityScope hides DRAFT advertisements from everyone except their
// creator and administrators.
func visibilityScope(caller domain.Caller) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if caller.IsAdmin {
			return db
		}
		if caller.Authenticated() {
			return db.Where("advertisements.status <> ? OR advertisements.creator_id = ?", domain.StatusDraft, caller.ID)
		}
		return db.Where("advertisements.status <> ?", domain.StatusDraft)
	}
}

func filterScope(f AdvertisementFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.CreatedAfter != nil {
			db = db.Where("advertisements.created_at >= ?", *f.CreatedAfter)
		}
		if f.CreatedBefore != nil {
			db = db.Where("advertisements.created_at <= ?", *f.CreatedBefore)
		}
		if f.CreatorID != nil {
			db = db.Where("advertisements.creator_id = ?", *f.CreatorID)
		}
		if f.Status != nil {
			db = db.Where("advertisements.status = ?", *f.Status)
		}
		if f.FavoriteOf > 0 {
			db = db.Joins("JOIN favorites ON favorites.advertisement_id = advertisements.id AND favorites.user_id = ?", f.FavoriteOf)
		}
		return db
	}
}
