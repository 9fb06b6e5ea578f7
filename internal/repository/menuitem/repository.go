package menuitem

import (
	"context"

	"menu-admin-api/internal/domain"
)

// ListFilter narrows the dashboard menu item listing. Zero values mean "no
// constraint".
type ListFilter struct {
	CategoryIDs    []string
	ActiveStatuses []bool
	Search         string
}

// WriteInput bundles everything a menu item mutation persists atomically:
// the item row, its full size set (with caller-assigned identifiers), the
// optional secondary-locale item translation, and the optional legacy
// price/limit rows.
type WriteInput struct {
	Item        domain.MenuItem
	Sizes       []domain.MenuItemSize
	Translation *domain.Translation
	Price       *domain.MenuItemPrice
	Limit       *domain.MenuItemMaxOrderLimit
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	// Create inserts the item with all child rows in one transaction.
	Create(ctx context.Context, in WriteInput) (*domain.MenuItem, error)
	// Update rewrites the item row and replaces its size set wholesale in
	// one transaction; translation and legacy rows are upserted alongside.
	Update(ctx context.Context, in WriteInput) error
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	DeletePrice(ctx context.Context, priceID string) error
	// ListPublic returns active items localized for the public menu.
	ListPublic(ctx context.Context, locale string, limit int) ([]domain.PublicMenuItem, error)
}
