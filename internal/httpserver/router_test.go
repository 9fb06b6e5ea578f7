package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"menu-admin-api/internal/cache"
	"menu-admin-api/internal/domain"
	"menu-admin-api/internal/validate"
)

type stubStaff struct {
	user     *domain.User
	guardErr error
	loginErr error
}

func (s *stubStaff) Guard(_ context.Context, _ string) (*domain.User, error) {
	if s.guardErr != nil {
		return nil, s.guardErr
	}
	return s.user, nil
}

func (s *stubStaff) Login(_ context.Context, _, _ string) (*domain.User, string, string, error) {
	if s.loginErr != nil {
		return nil, "", "", s.loginErr
	}
	return s.user, "access-token", "refresh-token", nil
}

func (s *stubStaff) AccessTTLSeconds() int { return 3600 }

type stubCategories struct {
	CategoryService
	created   *domain.Category
	createErr error
	calls     int
}

func (s *stubCategories) Create(_ context.Context, _ domain.User, _ validate.CategoryForm) (*domain.Category, error) {
	s.calls++
	return s.created, s.createErr
}

func (s *stubCategories) Delete(_ context.Context, _ domain.User, _ string) error {
	s.calls++
	return domain.ErrNotFound
}

type stubMenuItems struct {
	MenuItemService
	public []domain.PublicMenuItem
	locale string
	calls  int
}

func (s *stubMenuItems) PublicMenu(_ context.Context, locale string, _ int) ([]domain.PublicMenuItem, error) {
	s.calls++
	s.locale = locale
	return s.public, nil
}

type stubSettings struct {
	SettingsService
}

func (stubSettings) Get(_ context.Context) (*domain.SiteSettings, error) {
	defaults := domain.DefaultSiteSettings
	return &defaults, nil
}

var _ MenuItemService = (*stubMenuItems)(nil)

func testDeps(staff StaffService) Deps {
	return Deps{
		Staff:         staff,
		Categories:    &stubCategories{},
		MenuItems:     &stubMenuItems{},
		Settings:      stubSettings{},
		Tags:          cache.New(),
		CORSOrigins:   []string{"http://localhost:3000"},
		DefaultLocale: domain.LocaleEN,
	}
}

func testRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return buildRouter(log.New(testWriter{t}, "", 0), nil, deps)
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimSpace(string(p)))
	return len(p), nil
}

func TestRequireStaff_MissingToken(t *testing.T) {
	cats := &stubCategories{}
	deps := testDeps(&stubStaff{user: &domain.User{ID: "u1", Role: domain.RoleAdmin}})
	deps.Categories = cats
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Sweets"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	if cats.calls != 0 {
		t.Fatalf("expected no workflow calls, got %d", cats.calls)
	}
}

func TestRequireStaff_RejectedToken(t *testing.T) {
	deps := testDeps(&stubStaff{guardErr: domain.ErrUnauthorized})
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestCreateCategory_ValidationFieldsSurfaced(t *testing.T) {
	cats := &stubCategories{createErr: validate.Errors{"name": "name is required"}}
	deps := testDeps(&stubStaff{user: &domain.User{ID: "u1", Role: domain.RoleAdmin}})
	deps.Categories = cats
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":""}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"name":"name is required"`) {
		t.Fatalf("expected field errors in body, got %s", rec.Body.String())
	}
}

func TestCreateCategory_Success(t *testing.T) {
	cats := &stubCategories{created: &domain.Category{ID: "c1", Name: "Sweets", Slug: "sweets"}}
	deps := testDeps(&stubStaff{user: &domain.User{ID: "u1", Role: domain.RoleManager}})
	deps.Categories = cats
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Sweets"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"slug":"sweets"`) {
		t.Fatalf("expected created category in body, got %s", rec.Body.String())
	}
}

func TestCreateCategory_DuplicateSlugConflicts(t *testing.T) {
	cats := &stubCategories{createErr: domain.ErrAlreadyExists}
	deps := testDeps(&stubStaff{user: &domain.User{ID: "u1", Role: domain.RoleAdmin}})
	deps.Categories = cats
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Sweets"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"message":"already exists"`) {
		t.Fatalf("expected conflict message in body, got %s", rec.Body.String())
	}
}

func TestCreateCategory_BackendErrorSurfaced(t *testing.T) {
	cats := &stubCategories{createErr: errors.New("pool exhausted: too many clients")}
	deps := testDeps(&stubStaff{user: &domain.User{ID: "u1", Role: domain.RoleAdmin}})
	deps.Categories = cats
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Sweets"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"message":"pool exhausted: too many clients"`) {
		t.Fatalf("expected backend error text in body, got %s", rec.Body.String())
	}
}

func TestDeleteCategory_Missing(t *testing.T) {
	deps := testDeps(&stubStaff{user: &domain.User{ID: "u1", Role: domain.RoleAdmin}})
	deps.Categories = &stubCategories{}
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodDelete, "/categories/nope", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestLogin_Success(t *testing.T) {
	deps := testDeps(&stubStaff{user: &domain.User{ID: "u1", Email: "admin@example.com", Role: domain.RoleAdmin}})
	router := testRouter(t, deps)

	body := `{"email":"admin@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"access_token":"access-token"`) {
		t.Fatalf("expected tokens in body, got %s", rec.Body.String())
	}
}

func TestLogin_MissingFields(t *testing.T) {
	deps := testDeps(&stubStaff{})
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.c"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestPublicMenu_DefaultLocaleAndETag(t *testing.T) {
	items := &stubMenuItems{public: []domain.PublicMenuItem{{ID: "m1", Name: "Baklava"}}}
	deps := testDeps(&stubStaff{})
	deps.MenuItems = items
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if items.locale != domain.LocaleEN {
		t.Fatalf("expected default locale en, got %q", items.locale)
	}
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("expected ETag header")
	}

	req = httptest.NewRequest(http.MethodGet, "/menu", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Fatalf("expected status 304, got %d", rec.Code)
	}
	if items.calls != 1 {
		t.Fatalf("expected revalidation to skip the workflow, got %d calls", items.calls)
	}
}

func TestPublicMenu_ETagVariesWithLimit(t *testing.T) {
	items := &stubMenuItems{public: []domain.PublicMenuItem{{ID: "m1", Name: "Baklava"}}}
	deps := testDeps(&stubStaff{})
	deps.MenuItems = items
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/menu?limit=9", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("expected ETag header")
	}

	// A cached limit=9 response must not validate a limit=3 request.
	req = httptest.NewRequest(http.MethodGet, "/menu?limit=3", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for a different limit, got %d", rec.Code)
	}
	if items.calls != 2 {
		t.Fatalf("expected both limits to hit the workflow, got %d calls", items.calls)
	}
}

func TestPublicMenu_InvalidLocale(t *testing.T) {
	deps := testDeps(&stubStaff{})
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/menu?locale=fr", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestPublicMenu_ArabicLocalePassedThrough(t *testing.T) {
	items := &stubMenuItems{}
	deps := testDeps(&stubStaff{})
	deps.MenuItems = items
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/menu?locale=ar", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if items.locale != domain.LocaleAR {
		t.Fatalf("expected locale ar, got %q", items.locale)
	}
}

func TestGetSettings_PublicDefaults(t *testing.T) {
	deps := testDeps(&stubStaff{})
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), domain.DefaultSiteSettings.CallPhoneNumber) {
		t.Fatalf("expected default phone number in body, got %s", rec.Body.String())
	}
}

func TestMetricsRouteAbsentWithoutCollector(t *testing.T) {
	deps := testDeps(&stubStaff{})
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}
