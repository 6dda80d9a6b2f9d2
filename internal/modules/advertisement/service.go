package advertisement

import (
	"context"
	"errors"

	"adboard/internal/domain"
	"adboard/internal/repository"
)

// maxOpenAds — лимит одновременно открытых объявлений на пользователя.
const maxOpenAds = 10

type Service struct {
	ads       AdvertisementRepository
	favorites FavoriteRepository
}

func NewService(ads AdvertisementRepository, favorites FavoriteRepository) *Service {
	return &Service{ads: ads, favorites: favorites}
}

func (s *Service) List(ctx context.Context, caller domain.Caller, f repository.AdvertisementFilter, page, perPage int) (*ListResponse, error) {
	offset := (page - 1) * perPage
	ads, total, err := s.ads.List(ctx, caller, f, perPage, offset)
	if err != nil {
		return nil, err
	}

	favorited, err := s.favoritedSet(ctx, caller, ads)
	if err != nil {
		return nil, err
	}

	return toListResponse(ads, favorited, total, page, perPage), nil
}

func (s *Service) Get(ctx context.Context, caller domain.Caller, id int64) (*AdvertisementResponse, error) {
	ad, err := s.getVisible(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	favorited, err := s.isFavorited(ctx, caller, ad.ID)
	if err != nil {
		return nil, err
	}

	resp := toResponse(ad, favorited)
	return &resp, nil
}

func (s *Service) Create(ctx context.Context, caller domain.Caller, req CreateAdvertisementRequest) (*AdvertisementResponse, error) {
	if !caller.Authenticated() {
		return nil, ErrForbidden
	}

	status := domain.StatusOpen
	if req.Status != "" {
		status = domain.AdStatus(req.Status)
	}

	if err := s.checkOpenLimit(ctx, caller.ID, 0, status); err != nil {
		return nil, err
	}

	ad := &domain.Advertisement{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		CreatorID:   caller.ID,
	}

	if err := s.ads.Create(ctx, ad); err != nil {
		return nil, err
	}

	resp := toResponse(ad, false)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, caller domain.Caller, id int64, req UpdateAdvertisementRequest) (*AdvertisementResponse, error) {
	ad, err := s.getVisible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if !canWrite(caller, ad) {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		ad.Title = *req.Title
	}
	if req.Description != nil {
		ad.Description = *req.Description
	}
	if req.Status != nil {
		ad.Status = domain.AdStatus(*req.Status)
	}

	// Лимит считается против владельца объявления (не того, кто правит:
	// админ может редактировать чужое), сама запись из счёта исключается.
	if err := s.checkOpenLimit(ctx, ad.CreatorID, ad.ID, ad.Status); err != nil {
		return nil, err
	}

	if err := s.ads.Save(ctx, ad); err != nil {
		return nil, err
	}

	favorited, err := s.isFavorited(ctx, caller, ad.ID)
	if err != nil {
		return nil, err
	}

	resp := toResponse(ad, favorited)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, caller domain.Caller, id int64) error {
	ad, err := s.getVisible(ctx, caller, id)
	if err != nil {
		return err
	}
	if !canWrite(caller, ad) {
		return ErrForbidden
	}
	return s.ads.Delete(ctx, ad.ID)
}

// AddFavorite idempotently ensures the favorite exists and reports whether it
// was newly created. Favoriting your own advertisement is a domain conflict.
func (s *Service) AddFavorite(ctx context.Context, caller domain.Caller, id int64) (bool, error) {
	ad, err := s.getVisible(ctx, caller, id)
	if err != nil {
		return false, err
	}
	if ad.CreatorID == caller.ID {
		return false, ErrOwnFavorite
	}
	return s.favorites.Add(ctx, caller.ID, ad.ID)
}

// RemoveFavorite deletes the caller's favorite if present; absence is a no-op.
func (s *Service) RemoveFavorite(ctx context.Context, caller domain.Caller, id int64) error {
	ad, err := s.getVisible(ctx, caller, id)
	if err != nil {
		return err
	}
	return s.favorites.Remove(ctx, caller.ID, ad.ID)
}

// Favorites lists the caller's favorited advertisements with the same
// serialization and pagination contract as the main list.
func (s *Service) Favorites(ctx context.Context, caller domain.Caller, page, perPage int) (*ListResponse, error) {
	return s.List(ctx, caller, repository.AdvertisementFilter{FavoriteOf: caller.ID}, page, perPage)
}

// canWrite — объектная проверка: чтение разрешено всем, запись — только
// аутентифицированному владельцу или администратору.
func canWrite(caller domain.Caller, ad *domain.Advertisement) bool {
	if !caller.Authenticated() {
		return false
	}
	if caller.IsAdmin {
		return true
	}
	return ad.CreatorID == caller.ID
}

// checkOpenLimit enforces the OPEN quota. This is a read-then-write check
// with no lock: two concurrent creations can transiently exceed the limit.
// Accepted best-effort semantics, matching the storage-constraint-free rule.
func (s *Service) checkOpenLimit(ctx context.Context, creatorID, excludeID int64, status domain.AdStatus) error {
	if !status.IsOpen() {
		return nil
	}
	count, err := s.ads.CountOpenByCreator(ctx, creatorID, excludeID)
	if err != nil {
		return err
	}
	if count >= maxOpenAds {
		return ErrOpenLimitExceeded
	}
	return nil
}

func (s *Service) getVisible(ctx context.Context, caller domain.Caller, id int64) (*domain.Advertisement, error) {
	ad, err := s.ads.GetVisibleByID(ctx, caller, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ad, nil
}

func (s *Service) isFavorited(ctx context.Context, caller domain.Caller, adID int64) (bool, error) {
	if !caller.Authenticated() {
		return false, nil
	}
	return s.favorites.Exists(ctx, caller.ID, adID)
}

func (s *Service) favoritedSet(ctx context.Context, caller domain.Caller, ads []domain.Advertisement) (map[int64]bool, error) {
	if !caller.Authenticated() || len(ads) == 0 {
		return map[int64]bool{}, nil
	}
	ids := make([]int64, len(ads))
	for i := range ads {
		ids[i] = ads[i].ID
	}
	return s.favorites.FavoritedSet(ctx, caller.ID, ids)
}
