package auth

import (
	"context"

	"adboard/internal/domain"
)

// UserRepositoryInterface is the slice of the user repository this module needs.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type jwtService interface {
	GenerateToken(userID int64, username string, isAdmin bool) (string, error)
}
