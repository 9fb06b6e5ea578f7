package menuitem

import (
	"context"

	"menu-admin-api/internal/cache"
	"menu-admin-api/internal/domain"
	menuitemrepo "menu-admin-api/internal/repository/menuitem"
	"menu-admin-api/internal/slug"
	"menu-admin-api/internal/validate"
	"github.com/google/uuid"
)

// Service orchestrates menu item mutations. Every create/update persists the
// item row, its full size set (fresh caller-assigned identifiers so the size
// translations never wait on a read-back), the optional secondary-locale item
// translation, and the optional legacy price/limit rows, all in one
// repository transaction.
type Service struct {
	repo  menuitemrepo.Repository
	cache cache.Invalidator
}

// ListFilter re-exports the repository filter for the HTTP layer.
type ListFilter = menuitemrepo.ListFilter

func New(repo menuitemrepo.Repository, inv cache.Invalidator) *Service {
	return &Service{repo: repo, cache: inv}
}

func (s *Service) List(ctx context.Context, actor domain.User, filter ListFilter) ([]domain.MenuItem, error) {
	if !actor.IsStaff() {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, actor domain.User, id string) (*domain.MenuItem, error) {
	if !actor.IsStaff() {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, actor domain.User, form validate.MenuItemForm) (*domain.MenuItem, error) {
	if !actor.IsStaff() {
		return nil, domain.ErrUnauthorized
	}
	in, errs := validate.MenuItem(form)
	if errs != nil {
		return nil, errs
	}

	created, err := s.repo.Create(ctx, writeInput("", in))
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return created, nil
}

func (s *Service) Update(ctx context.Context, actor domain.User, id string, form validate.MenuItemForm) error {
	if !actor.IsStaff() {
		return domain.ErrUnauthorized
	}
	if id == "" {
		return validate.Errors{"id": "missing menu item identifier"}
	}
	in, errs := validate.MenuItem(form)
	if errs != nil {
		return errs
	}

	if err := s.repo.Update(ctx, writeInput(id, in)); err != nil {
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
		return validate.Errors{"id": "missing menu item identifier"}
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
		return validate.Errors{"id": "missing menu item identifier"}
	}
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// DeletePrice removes one legacy price row by its own identifier.
func (s *Service) DeletePrice(ctx context.Context, actor domain.User, priceID string) error {
	if !actor.IsStaff() {
		return domain.ErrUnauthorized
	}
	if priceID == "" {
		return validate.Errors{"price_id": "missing price identifier"}
	}
	if err := s.repo.DeletePrice(ctx, priceID); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// PublicMenu is the localized projection for the marketing site; no guard.
func (s *Service) PublicMenu(ctx context.Context, locale string, limit int) ([]domain.PublicMenuItem, error) {
	if limit <= 0 {
		limit = 9
	}
	return s.repo.ListPublic(ctx, locale, limit)
}

func writeInput(id string, in validate.MenuItemInput) menuitemrepo.WriteInput {
	w := menuitemrepo.WriteInput{
		Item: domain.MenuItem{
			ID:           id,
			CategoryID:   in.CategoryID,
			Name:         in.Name,
			Slug:         slug.Make(in.Name),
			Description:  in.Description,
			Availability: in.Availability,
			IsActive:     in.IsActive,
			ImageKey:     in.ImageKey,
		},
	}

	for _, sz := range in.Sizes {
		w.Sizes = append(w.Sizes, domain.MenuItemSize{
			ID:       uuid.NewString(),
			Price:    sz.Price,
			IsActive: sz.IsActive,
			Name:     sz.Name,
			NameAr:   sz.NameAr,
		})
	}

	if in.NameAr != "" {
		w.Translation = &domain.Translation{
			Locale:      domain.LocaleAR,
			Name:        in.NameAr,
			Description: in.DescriptionAr,
		}
	}
	if in.Price != nil {
		w.Price = &domain.MenuItemPrice{
			MenuItemID: id,
			Type:       in.Price.Type,
			Count:      in.Price.Count,
			Price:      in.Price.Price,
		}
	}
	if in.Limit != nil {
		w.Limit = &domain.MenuItemMaxOrderLimit{
			MenuItemID: id,
			Unit:       in.Limit.Unit,
			LimitValue: in.Limit.Value,
		}
	}
	return w
}

func (s *Service) invalidate() {
	s.cache.Invalidate(cache.TagDashboard)
	s.cache.Invalidate(cache.TagMenu)
}
