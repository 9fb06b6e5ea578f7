package settings

import (
	"context"
	"errors"

	"menu-admin-api/internal/cache"
	"menu-admin-api/internal/domain"
	settingsrepo "menu-admin-api/internal/repository/settings"
	"menu-admin-api/internal/validate"
)

// Service reads and writes the single site settings row.
type Service struct {
	repo  settingsrepo.Repository
	cache cache.Invalidator
}

func New(repo settingsrepo.Repository, inv cache.Invalidator) *Service {
	return &Service{repo: repo, cache: inv}
}

// Get returns the stored settings, falling back to the built-in defaults
// when nothing has been saved yet.
func (s *Service) Get(ctx context.Context) (*domain.SiteSettings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			defaults := domain.DefaultSiteSettings
			return &defaults, nil
		}
		return nil, err
	}
	return stored, nil
}

func (s *Service) Update(ctx context.Context, actor domain.User, form validate.SettingsForm) error {
	if !actor.IsStaff() {
		return domain.ErrUnauthorized
	}
	in, errs := validate.Settings(form)
	if errs != nil {
		return errs
	}
	if err := s.repo.Upsert(ctx, in); err != nil {
		return err
	}
	s.cache.Invalidate(cache.TagSettings)
	return nil
}
