package advertisement

import (
	"time"

	"adboard/internal/domain"
)

type CreateAdvertisementRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=OPEN CLOSED DRAFT"`
}

// UpdateAdvertisementRequest is a partial update: nil fields keep their
// current values. Creator and timestamps are never client-writable.
type UpdateAdvertisementRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=OPEN CLOSED DRAFT"`
}

// CreatorResponse — публичная проекция пользователя в объявлении.
type CreatorResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AdvertisementResponse struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Creator     *CreatorResponse `json:"creator"`
	Status      domain.AdStatus  `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	IsFavorited bool             `json:"is_favorited"`
}

type ListResponse struct {
	Advertisements []AdvertisementResponse `json:"advertisements"`
	Total          int64                   `json:"total"`
	Page           int                     `json:"page"`
	PerPage        int                     `json:"per_page"`
	TotalPages     int                     `json:"total_pages"`
}

func toResponse(ad *domain.Advertisement, favorited bool) AdvertisementResponse {
	resp := AdvertisementResponse{
		ID:          ad.ID,
		Title:       ad.Title,
		Description: ad.Description,
		Status:      ad.Status,
		CreatedAt:   ad.CreatedAt,
		UpdatedAt:   ad.UpdatedAt,
		IsFavorited: favorited,
	}

	if ad.Creator != nil {
		resp.Creator = &CreatorResponse{
			ID:        ad.Creator.ID,
			Username:  ad.Creator.Username,
			FirstName: ad.Creator.FirstName,
			LastName:  ad.Creator.LastName,
		}
	}

	return resp
}

func toListResponse(ads []domain.Advertisement, favorited map[int64]bool, total int64, page, perPage int) *ListResponse {
	items := make([]AdvertisementResponse, len(ads))
	for i := range ads {
		items[i] = toResponse(&ads[i], favorited[ads[i].ID])
	}

	totalPages := int(total) / perPage
	if int(total)%perPage > 0 {
		totalPages++
	}

	return &ListResponse{
		Advertisements: items,
		Total:          total,
		Page:           page,
		PerPage:        perPage,
		TotalPages:     totalPages,
	}
}
