package user

import (
	"context"

	"menu-admin-api/internal/domain"
)

// Record is a user row including the stored credential hash.
type Record struct {
	domain.User
	PasswordHash string
}

type Repository interface {
	Create(ctx context.Context, rec Record) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*Record, error)
	GetByEmail(ctx context.Context, email string) (*Record, error)
}
