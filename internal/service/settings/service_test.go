package settings

import (
	"context"
	"errors"
	"testing"

	"menu-admin-api/internal/cache"
	"menu-admin-api/internal/domain"
	"menu-admin-api/internal/validate"
)

type stubRepo struct {
	stored *domain.SiteSettings
	getErr error
	upErr  error
	last   *domain.SiteSettings
	calls  int
}

func (s *stubRepo) Get(_ context.Context) (*domain.SiteSettings, error) {
	s.calls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.stored, nil
}

func (s *stubRepo) Upsert(_ context.Context, in domain.SiteSettings) error {
	s.calls++
	s.last = &in
	return s.upErr
}

func validForm() validate.SettingsForm {
	return validate.SettingsForm{
		CallPhoneNumber:     "+961 81 484 472",
		WhatsappPhoneNumber: "+961 81 484 472",
		OpeningHoursEn:      "9 AM - 5 PM",
		OpeningHoursAr:      "٩ ص - ٥ م",
		ClosedDays:          []string{"monday"},
	}
}

func TestGet_FallsBackToDefaults(t *testing.T) {
	svc := New(&stubRepo{getErr: domain.ErrNotFound}, cache.Noop{})
	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CallPhoneNumber != domain.DefaultSiteSettings.CallPhoneNumber {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestUpdate_Guarded(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, cache.Noop{})
	err := svc.Update(context.Background(), domain.User{Role: domain.RoleCustomer}, validForm())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("expected zero repo calls, got %d", repo.calls)
	}
}

func TestUpdate_PersistsNormalizedInput(t *testing.T) {
	repo := &stubRepo{}
	tags := cache.New()
	svc := New(repo, tags)

	form := validForm()
	form.ClosedDays = []string{"Monday", "monday"}
	if err := svc.Update(context.Background(), domain.User{Role: domain.RoleAdmin}, form); err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.last == nil || len(repo.last.ClosedDays) != 1 {
		t.Fatalf("closed days not deduplicated: %+v", repo.last)
	}
	if tags.Version(cache.TagSettings) == 0 {
		t.Fatal("expected settings tag bumped")
	}
}

func TestUpdate_ValidationFailure(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, cache.Noop{})
	err := svc.Update(context.Background(), domain.User{Role: domain.RoleAdmin}, validate.SettingsForm{})
	var errs validate.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("expected zero repo calls, got %d", repo.calls)
	}
}
