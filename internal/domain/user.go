package domain

import "time"

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:150;not null;uniqueIndex" validate:"required,max=150"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email,omitempty" validate:"omitempty,email"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Caller — кто выполняет запрос. ID == 0 означает анонимный запрос.
// Передаётся явным параметром в операции вместо чтения из контекста gin.
type Caller struct {
	ID      int64
	IsAdmin bool
}

// Anonymous is the caller for requests that carry no bearer token.
var Anonymous = Caller{}

func (c Caller) Authenticated() bool { return c.ID != 0 }
