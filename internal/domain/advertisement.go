package domain

import (
	"strings"
	"time"
)

type AdStatus string

const (
	StatusOpen   AdStatus = "OPEN"
	StatusClosed AdStatus = "CLOSED"
	StatusDraft  AdStatus = "DRAFT"
)

// IsOpen is tolerant of how the status was transported: "open" from a legacy
// client counts the same as StatusOpen.
func (s AdStatus) IsOpen() bool {
	return strings.EqualFold(string(s), string(StatusOpen))
}

func (s AdStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusDraft:
		return true
	}
	return false
}

type Advertisement struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null" validate:"required,max=200"`
	Description string    `json:"description" gorm:"type:text"`
	Status      AdStatus  `json:"status" gorm:"size:10;not null;default:OPEN;index"`
	CreatorID   int64     `json:"creator_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Связи
	Creator   *User      `json:"creator,omitempty" gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE"`
	Favorites []Favorite `json:"-" gorm:"foreignKey:AdvertisementID;constraint:OnDelete:CASCADE"`
}

func (Advertisement) TableName() string { return "advertisements" }
