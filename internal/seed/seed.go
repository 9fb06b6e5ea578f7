// Package seed inserts a staff login and a small bilingual menu for local
// development. Apply is idempotent: reruns update rather than duplicate.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"menu-admin-api/internal/domain"
	"menu-admin-api/internal/slug"
)

type categorySeed struct {
	Name   string
	NameAr string
	Items  []itemSeed
}

type itemSeed struct {
	Name   string
	NameAr string
	Desc   string
	Sizes  []sizeSeed
}

type sizeSeed struct {
	Name   string
	NameAr string
	Price  int64
}

// Apply inserts basic seed data for manual testing.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureAdmin(ctx, pool, "admin@example.com", "admin123"); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	categories := []categorySeed{
		{
			Name:   "Sweets",
			NameAr: "حلويات",
			Items: []itemSeed{
				{
					Name:   "Baklava",
					NameAr: "بقلاوة",
					Desc:   "Layered pastry with pistachio",
					Sizes: []sizeSeed{
						{Name: "Small Box", NameAr: "علبة صغيرة", Price: 1200},
						{Name: "Large Box", NameAr: "علبة كبيرة", Price: 2200},
					},
				},
				{
					Name:   "Knafeh",
					NameAr: "كنافة",
					Desc:   "Warm cheese dessert",
					Sizes: []sizeSeed{
						{Name: "Plate", NameAr: "صحن", Price: 900},
					},
				},
			},
		},
		{
			Name:   "Drinks",
			NameAr: "مشروبات",
			Items: []itemSeed{
				{
					Name:   "Lemonade",
					NameAr: "ليموناضة",
					Sizes: []sizeSeed{
						{Name: "Cup", NameAr: "كوب", Price: 300},
					},
				},
			},
		},
	}

	for _, cat := range categories {
		if err := upsertCategory(ctx, pool, cat); err != nil {
			return fmt.Errorf("upsert category %s: %w", cat.Name, err)
		}
	}

	return nil
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (email, password_hash, first_name, role)
VALUES ($1, $2, 'Admin', 'ADMIN')
ON CONFLICT (email) DO NOTHING
`
	_, err = pool.Exec(ctx, q, email, string(hash))
	return err
}

func upsertCategory(ctx context.Context, pool *pgxpool.Pool, cat categorySeed) error {
	const q = `
INSERT INTO categories (name, slug, is_active)
VALUES ($1, $2, TRUE)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var categoryID string
	if err := pool.QueryRow(ctx, q, cat.Name, slug.Make(cat.Name)).Scan(&categoryID); err != nil {
		return err
	}

	const tq = `
INSERT INTO categories_translations (category_id, locale, name)
VALUES ($1, $2, $3)
ON CONFLICT (category_id, locale) DO UPDATE SET name = EXCLUDED.name
`
	if _, err := pool.Exec(ctx, tq, categoryID, domain.LocaleAR, cat.NameAr); err != nil {
		return err
	}

	for _, item := range cat.Items {
		if err := upsertItem(ctx, pool, categoryID, item); err != nil {
			return fmt.Errorf("upsert item %s: %w", item.Name, err)
		}
	}
	return nil
}

func upsertItem(ctx context.Context, pool *pgxpool.Pool, categoryID string, item itemSeed) error {
	const q = `
INSERT INTO menu_items (category_id, name, slug, description, availability, is_active)
VALUES ($1, $2, $3, $4, TRUE, TRUE)
ON CONFLICT (slug) DO UPDATE SET
    category_id = EXCLUDED.category_id,
    name = EXCLUDED.name,
    description = EXCLUDED.description
RETURNING id::text
`
	var itemID string
	if err := pool.QueryRow(ctx, q, categoryID, item.Name, slug.Make(item.Name), item.Desc).Scan(&itemID); err != nil {
		return err
	}

	const tq = `
INSERT INTO menu_items_translations (menu_item_id, locale, name)
VALUES ($1, $2, $3)
ON CONFLICT (menu_item_id, locale) DO UPDATE SET name = EXCLUDED.name
`
	if _, err := pool.Exec(ctx, tq, itemID, domain.LocaleAR, item.NameAr); err != nil {
		return err
	}

	// Seed sizes are replaced wholesale, same as the dashboard update path.
	if _, err := pool.Exec(ctx, `DELETE FROM menu_item_sizes WHERE menu_item_id = $1`, itemID); err != nil {
		return err
	}
	for _, size := range item.Sizes {
		sizeID := uuid.NewString()
		if _, err := pool.Exec(ctx,
			`INSERT INTO menu_item_sizes (id, menu_item_id, price, is_active) VALUES ($1, $2, $3, TRUE)`,
			sizeID, itemID, size.Price,
		); err != nil {
			return err
		}
		if _, err := pool.Exec(ctx,
			`INSERT INTO menu_item_size_translations (menu_item_size_id, locale, name) VALUES ($1, 'en', $2), ($1, 'ar', $3)`,
			sizeID, size.Name, size.NameAr,
		); err != nil {
			return err
		}
	}
	return nil
}
