package settings

import (
	"context"

	"menu-admin-api/internal/domain"
)

type Repository interface {
	// Get returns the single settings row, or domain.ErrNotFound when none
	// has been written yet.
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Upsert(ctx context.Context, s domain.SiteSettings) error
}
