package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"menu-admin-api/internal/config"
	"menu-admin-api/internal/db"
	"menu-admin-api/internal/domain"
	"menu-admin-api/internal/importer"
	categoryrepo "menu-admin-api/internal/repository/category"
	menuitemrepo "menu-admin-api/internal/repository/menuitem"
	"menu-admin-api/internal/slug"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to menu CSV export")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC)
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	resolver := &categoryResolver{repo: categoryrepo.NewPostgres(pool), known: map[string]string{}}
	imp := importer.NewCSVImporter(f, menuitemrepo.NewPostgres(pool, logger), resolver)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d menu items in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}

// categoryResolver memoizes name lookups and creates missing categories.
type categoryResolver struct {
	repo  categoryrepo.Repository
	known map[string]string
}

func (r *categoryResolver) Resolve(ctx context.Context, name string) (string, error) {
	if id, ok := r.known[name]; ok {
		return id, nil
	}

	existing, err := r.repo.List(ctx, categoryrepo.ListFilter{Search: name})
	if err != nil {
		return "", err
	}
	for _, c := range existing {
		if c.Name == name {
			r.known[name] = c.ID
			return c.ID, nil
		}
	}

	created, err := r.repo.Create(ctx, domain.Category{
		Name:     name,
		Slug:     slug.Make(name),
		IsActive: true,
	}, nil)
	if err != nil {
		return "", err
	}
	r.known[name] = created.ID
	return created.ID, nil
}
