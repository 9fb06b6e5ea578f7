package category

import (
	"context"

	"menu-admin-api/internal/cache"
	"menu-admin-api/internal/domain"
	categoryrepo "menu-admin-api/internal/repository/category"
	"menu-admin-api/internal/slug"
	"menu-admin-api/internal/validate"
)

// Service orchestrates category mutations: role check, validation, slug
// derivation, then a single transactional write including the optional
// secondary-locale translation.
type Service struct {
	repo  categoryrepo.Repository
	cache cache.Invalidator
}

func New(repo categoryrepo.Repository, inv cache.Invalidator) *Service {
	return &Service{repo: repo, cache: inv}
}

func (s *Service) List(ctx context.Context, actor domain.User, search string) ([]domain.Category, error) {
	if !actor.IsStaff() {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.List(ctx, categoryrepo.ListFilter{Search: search})
}

func (s *Service) Get(ctx context.Context, actor domain.User, id string) (*domain.Category, error) {
	if !actor.IsStaff() {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, actor domain.User, form validate.CategoryForm) (*domain.Category, error) {
	if !actor.IsStaff() {
		return nil, domain.ErrUnauthorized
	}
	in, errs := validate.Category(form)
	if errs != nil {
		return nil, errs
	}

	created, err := s.repo.Create(ctx, domain.Category{
		Name:        in.Name,
		Slug:        slug.Make(in.Name),
		Description: in.Description,
		IsActive:    in.IsActive,
	}, translation(in))
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return created, nil
}

func (s *Service) Update(ctx context.Context, actor domain.User, id string, form validate.CategoryForm) error {
	if !actor.IsStaff() {
		return domain.ErrUnauthorized
	}
	if id == "" {
		return validate.Errors{"id": "missing category identifier"}
	}
	in, errs := validate.Category(form)
	if errs != nil {
		return errs
	}

	err := s.repo.Update(ctx, domain.Category{
		ID:          id,
		Name:        in.Name,
		Slug:        slug.Make(in.Name),
		Description: in.Description,
		IsActive:    in.IsActive,
	}, translation(in))
	if err != nil {
		return err
	}

	s.invalidate()
	return nil
}

func (s *Service) Delete(ctx context.Context, actor domain.User, id string) error {
	if !actor.IsStaff() {
		return domain.ErrUnauthorized
	}
	if id == "" {
		return validate.Errors{"id": "missing category identifier"}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *Service) SetActive(ctx context.Context, actor domain.User, id string, active bool) error {
	if !actor.IsStaff() {
		return domain.ErrUnauthorized
	}
	if id == "" {
		return validate.Errors{"id": "missing category identifier"}
	}
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// translation maps a non-empty secondary-locale name to its upsert row. The
// primary locale lives on the category row itself.
func translation(in validate.CategoryInput) *domain.Translation {
	if in.NameAr == "" {
		return nil
	}
	return &domain.Translation{
		Locale:      domain.LocaleAR,
		Name:        in.NameAr,
		Description: in.DescriptionAr,
	}
}

func (s *Service) invalidate() {
	s.cache.Invalidate(cache.TagDashboard)
	s.cache.Invalidate(cache.TagMenu)
}
