package httpserver

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"menu-admin-api/internal/cache"
	"menu-admin-api/internal/domain"
	"menu-admin-api/internal/filestore"
	"menu-admin-api/internal/metrics"
	menuitemsvc "menu-admin-api/internal/service/menuitem"
	"menu-admin-api/internal/validate"
)

// StaffService authenticates dashboard users and resolves their tokens.
type StaffService interface {
	Guard
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	AccessTTLSeconds() int
}

type CategoryService interface {
	List(ctx context.Context, actor domain.User, search string) ([]domain.Category, error)
	Get(ctx context.Context, actor domain.User, id string) (*domain.Category, error)
	Create(ctx context.Context, actor domain.User, form validate.CategoryForm) (*domain.Category, error)
	Update(ctx context.Context, actor domain.User, id string, form validate.CategoryForm) error
	Delete(ctx context.Context, actor domain.User, id string) error
	SetActive(ctx context.Context, actor domain.User, id string, active bool) error
}

type MenuItemService interface {
	List(ctx context.Context, actor domain.User, filter menuitemsvc.ListFilter) ([]domain.MenuItem, error)
	Get(ctx context.Context, actor domain.User, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, actor domain.User, form validate.MenuItemForm) (*domain.MenuItem, error)
	Update(ctx context.Context, actor domain.User, id string, form validate.MenuItemForm) error
	Delete(ctx context.Context, actor domain.User, id string) error
	SetActive(ctx context.Context, actor domain.User, id string, active bool) error
	DeletePrice(ctx context.Context, actor domain.User, priceID string) error
	PublicMenu(ctx context.Context, locale string, limit int) ([]domain.PublicMenuItem, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, actor domain.User, form validate.SettingsForm) error
}

// Deps collects everything the router needs. Files and Metrics may be nil;
// the corresponding routes are then left unregistered.
type Deps struct {
	Staff      StaffService
	Categories CategoryService
	MenuItems  MenuItemService
	Settings   SettingsService
	Files      filestore.Store
	Tags       *cache.Tags
	Metrics    *metrics.Metrics

	CORSOrigins   []string
	DefaultLocale string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}
	router.Use(cors.New(corsConfig(deps.CORSOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	router.POST("/auth/login", loginHandler(deps.Staff, logger))

	// Public marketing-site reads.
	router.GET("/menu", publicMenuHandler(deps.MenuItems, deps.Tags, deps.DefaultLocale, logger))
	router.GET("/settings", getSettingsHandler(deps.Settings, deps.Files, logger))

	staffOnly := router.Group("/", requireStaff(deps.Staff, logger))

	staffOnly.GET("/categories", listCategoriesHandler(deps.Categories, logger))
	staffOnly.GET("/categories/:id", getCategoryHandler(deps.Categories, logger))
	staffOnly.POST("/categories", createCategoryHandler(deps.Categories, logger))
	staffOnly.PUT("/categories/:id", updateCategoryHandler(deps.Categories, logger))
	staffOnly.DELETE("/categories/:id", deleteCategoryHandler(deps.Categories, logger))
	staffOnly.PATCH("/categories/:id/active", setCategoryActiveHandler(deps.Categories, logger))

	staffOnly.GET("/menu-items", listMenuItemsHandler(deps.MenuItems, logger))
	staffOnly.GET("/menu-items/:id", getMenuItemHandler(deps.MenuItems, logger))
	staffOnly.POST("/menu-items", createMenuItemHandler(deps.MenuItems, logger))
	staffOnly.PUT("/menu-items/:id", updateMenuItemHandler(deps.MenuItems, logger))
	staffOnly.DELETE("/menu-items/:id", deleteMenuItemHandler(deps.MenuItems, logger))
	staffOnly.PATCH("/menu-items/:id/active", setMenuItemActiveHandler(deps.MenuItems, logger))
	staffOnly.DELETE("/menu-items/prices/:id", deleteMenuItemPriceHandler(deps.MenuItems, logger))

	staffOnly.PUT("/settings", updateSettingsHandler(deps.Settings, logger))

	if deps.Files != nil {
		staffOnly.POST("/uploads", uploadHandler(deps.Files, logger))
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "If-None-Match"}
	cfg.ExposeHeaders = []string{"ETag"}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
