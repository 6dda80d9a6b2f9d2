package domain

import "time"

// Favorite представляет закладку пользователя на чужое объявление.
// Составной уникальный индекс гарантирует на уровне БД, что один пользователь
// не добавит одно объявление в избранное дважды.
type Favorite struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	UserID          int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_advertisement"`
	AdvertisementID int64     `json:"advertisement_id" gorm:"not null;index;uniqueIndex:idx_user_advertisement"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Virtual fields для preload
	User          *User          `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Advertisement *Advertisement `json:"advertisement,omitempty" gorm:"foreignKey:AdvertisementID;constraint:OnDelete:CASCADE"`
}

// TableName возвращает имя таблицы в БД
func (Favorite) TableName() string { return "favorites" }
