package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"menu-admin-api/internal/cache"
	"menu-admin-api/internal/config"
	"menu-admin-api/internal/db"
	"menu-admin-api/internal/filestore"
	"menu-admin-api/internal/httpserver"
	"menu-admin-api/internal/metrics"
	categoryrepo "menu-admin-api/internal/repository/category"
	menuitemrepo "menu-admin-api/internal/repository/menuitem"
	settingsrepo "menu-admin-api/internal/repository/settings"
	tokenrepo "menu-admin-api/internal/repository/token"
	userrepo "menu-admin-api/internal/repository/user"
	categorysvc "menu-admin-api/internal/service/category"
	menuitemsvc "menu-admin-api/internal/service/menuitem"
	settingssvc "menu-admin-api/internal/service/settings"
	staffsvc "menu-admin-api/internal/service/staff"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	tags := cache.New()

	userRepo := userrepo.NewPostgres(dbpool)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	menuItemRepo := menuitemrepo.NewPostgres(dbpool, logger)
	settingsRepo := settingsrepo.NewPostgres(dbpool)

	staffService := staffsvc.New(userRepo, tokenRepo)
	categoryService := categorysvc.New(categoryRepo, tags)
	menuItemService := menuitemsvc.New(menuItemRepo, tags)
	settingsService := settingssvc.New(settingsRepo, tags)

	var files filestore.Store
	if cfg.CloudinaryURL != "" {
		files, err = filestore.NewCloudinary(cfg.CloudinaryURL)
		if err != nil {
			logger.Fatalf("init filestore: %v", err)
		}
	} else {
		logger.Printf("CLOUDINARY_URL not set, uploads disabled")
	}

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Staff:         staffService,
		Categories:    categoryService,
		MenuItems:     menuItemService,
		Settings:      settingsService,
		Files:         files,
		Tags:          tags,
		Metrics:       metrics.New(),
		CORSOrigins:   cfg.CORSOrigins,
		DefaultLocale: cfg.DefaultLocale,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
