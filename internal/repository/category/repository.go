package category

import (
	"context"

	"menu-admin-api/internal/domain"
)

// ListFilter narrows the dashboard category listing.
type ListFilter struct {
	Search string
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	// Create inserts the category and, when tr is non-nil, upserts its
	// secondary-locale translation in the same transaction.
	Create(ctx context.Context, c domain.Category, tr *domain.Translation) (*domain.Category, error)
	// Update rewrites the category row by id with the same translation
	// semantics as Create.
	Update(ctx context.Context, c domain.Category, tr *domain.Translation) error
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}
