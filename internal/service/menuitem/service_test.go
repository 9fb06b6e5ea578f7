package menuitem

import (
	"context"
	"errors"
	"testing"

	"menu-admin-api/internal/cache"
	"menu-admin-api/internal/domain"
	menuitemrepo "menu-admin-api/internal/repository/menuitem"
	"menu-admin-api/internal/validate"
)

type stubRepo struct {
	createErr  error
	updateErr  error
	deleteErr  error
	calls      int
	lastCreate menuitemrepo.WriteInput
	lastUpdate menuitemrepo.WriteInput
	lastDelete string
	lastSetID  string
	lastSetVal bool
	lastPrice  string
	public     []domain.PublicMenuItem
	lastLocale string
	lastLimit  int
}

func (s *stubRepo) List(_ context.Context, _ menuitemrepo.ListFilter) ([]domain.MenuItem, error) {
	s.calls++
	return nil, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.MenuItem, error) {
	s.calls++
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Create(_ context.Context, in menuitemrepo.WriteInput) (*domain.MenuItem, error) {
	s.calls++
	s.lastCreate = in
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := in.Item
	out.ID = "item-1"
	out.Sizes = in.Sizes
	return &out, nil
}

func (s *stubRepo) Update(_ context.Context, in menuitemrepo.WriteInput) error {
	s.calls++
	s.lastUpdate = in
	return s.updateErr
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	s.calls++
	s.lastDelete = id
	return s.deleteErr
}

func (s *stubRepo) SetActive(_ context.Context, id string, active bool) error {
	s.calls++
	s.lastSetID = id
	s.lastSetVal = active
	return nil
}

func (s *stubRepo) DeletePrice(_ context.Context, priceID string) error {
	s.calls++
	s.lastPrice = priceID
	return nil
}

func (s *stubRepo) ListPublic(_ context.Context, locale string, limit int) ([]domain.PublicMenuItem, error) {
	s.calls++
	s.lastLocale = locale
	s.lastLimit = limit
	return s.public, nil
}

var (
	manager  = domain.User{ID: "u1", Role: domain.RoleManager}
	customer = domain.User{ID: "u2", Role: domain.RoleCustomer}
)

func validForm() validate.MenuItemForm {
	return validate.MenuItemForm{
		CategoryID: "11111111-1111-1111-1111-111111111111",
		Name:       "Baklava Platter",
		Sizes: []validate.SizeForm{
			{Name: "Small", NameAr: "صغير", Price: "8"},
			{Name: "Large", Price: "14"},
		},
	}
}

func TestCreate_AssignsSizeIdentifiers(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, cache.Noop{})

	created, err := svc.Create(context.Background(), manager, validForm())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "item-1" {
		t.Fatalf("unexpected id %q", created.ID)
	}
	if len(repo.lastCreate.Sizes) != 2 {
		t.Fatalf("expected 2 sizes, got %d", len(repo.lastCreate.Sizes))
	}
	seen := map[string]bool{}
	for _, sz := range repo.lastCreate.Sizes {
		if sz.ID == "" {
			t.Fatal("expected caller-assigned size id")
		}
		if seen[sz.ID] {
			t.Fatalf("duplicate size id %q", sz.ID)
		}
		seen[sz.ID] = true
	}
	if repo.lastCreate.Item.Slug != "baklava-platter" {
		t.Fatalf("unexpected slug %q", repo.lastCreate.Item.Slug)
	}
	if repo.lastCreate.Sizes[0].NameAr != "صغير" {
		t.Fatalf("size translation lost: %+v", repo.lastCreate.Sizes[0])
	}
}

func TestCreate_EmptySizesRejectedBeforeWrite(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, cache.Noop{})

	form := validForm()
	form.Sizes = nil
	_, err := svc.Create(context.Background(), manager, form)
	var errs validate.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("expected zero repo calls, got %d", repo.calls)
	}
}

func TestCreate_TranslationOnlyWhenNameArSet(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, cache.Noop{})

	if _, err := svc.Create(context.Background(), manager, validForm()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if repo.lastCreate.Translation != nil {
		t.Fatalf("expected no item translation, got %+v", repo.lastCreate.Translation)
	}

	form := validForm()
	form.NameAr = "بقلاوة"
	form.Description = "rich"
	form.DescriptionAr = "غني"
	if _, err := svc.Create(context.Background(), manager, form); err != nil {
		t.Fatalf("create: %v", err)
	}
	tr := repo.lastCreate.Translation
	if tr == nil || tr.Locale != domain.LocaleAR || tr.Name != "بقلاوة" || tr.Description != "غني" {
		t.Fatalf("unexpected translation %+v", tr)
	}
}

func TestCreate_LegacyRowsPassedThrough(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, cache.Noop{})

	form := validForm()
	form.PriceType = "gram"
	form.PriceCount = "250"
	form.PriceAmount = "12"
	form.MaxOrderLimitUnit = "gram"
	form.MaxOrderLimitValue = "1000"
	if _, err := svc.Create(context.Background(), manager, form); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p := repo.lastCreate.Price; p == nil || p.Type != "gram" || p.Count != 250 || p.Price != 12 {
		t.Fatalf("unexpected price %+v", repo.lastCreate.Price)
	}
	if l := repo.lastCreate.Limit; l == nil || l.Unit != "gram" || l.LimitValue != 1000 {
		t.Fatalf("unexpected limit %+v", repo.lastCreate.Limit)
	}
}

func TestUpdate_ReplacesSizesWithFreshIDs(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, cache.Noop{})

	form := validForm()
	form.Sizes = []validate.SizeForm{{ID: "old-size-id", Name: "Only", Price: "10"}}
	if err := svc.Update(context.Background(), manager, "item-1", form); err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.lastUpdate.Item.ID != "item-1" {
		t.Fatalf("unexpected item id %q", repo.lastUpdate.Item.ID)
	}
	if len(repo.lastUpdate.Sizes) != 1 {
		t.Fatalf("expected 1 size, got %d", len(repo.lastUpdate.Sizes))
	}
	if repo.lastUpdate.Sizes[0].ID == "old-size-id" || repo.lastUpdate.Sizes[0].ID == "" {
		t.Fatalf("expected fresh size id, got %q", repo.lastUpdate.Sizes[0].ID)
	}
}

func TestMutations_UnauthorizedShortCircuit(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, cache.Noop{})
	ctx := context.Background()

	if _, err := svc.Create(ctx, customer, validForm()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("create: expected ErrUnauthorized, got %v", err)
	}
	if err := svc.Update(ctx, customer, "item-1", validForm()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("update: expected ErrUnauthorized, got %v", err)
	}
	if err := svc.Delete(ctx, customer, "item-1"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("delete: expected ErrUnauthorized, got %v", err)
	}
	if err := svc.SetActive(ctx, customer, "item-1", true); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("toggle: expected ErrUnauthorized, got %v", err)
	}
	if err := svc.DeletePrice(ctx, customer, "p1"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("delete price: expected ErrUnauthorized, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("expected zero repo calls, got %d", repo.calls)
	}
}

func TestUpdate_MissingIdentifier(t *testing.T) {
	svc := New(&stubRepo{}, cache.Noop{})
	err := svc.Update(context.Background(), manager, "", validForm())
	var errs validate.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
}

func TestCreate_BackendFailurePropagates(t *testing.T) {
	backendErr := errors.New("duplicate key value violates unique constraint")
	repo := &stubRepo{createErr: backendErr}
	svc := New(repo, cache.Noop{})
	if _, err := svc.Create(context.Background(), manager, validForm()); !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
}

func TestPublicMenu_DefaultsLimit(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, cache.Noop{})
	if _, err := svc.PublicMenu(context.Background(), "ar", 0); err != nil {
		t.Fatalf("public menu: %v", err)
	}
	if repo.lastLocale != "ar" || repo.lastLimit != 9 {
		t.Fatalf("unexpected args locale=%q limit=%d", repo.lastLocale, repo.lastLimit)
	}
}
