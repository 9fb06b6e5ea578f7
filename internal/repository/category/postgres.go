package category

import (
	"context"
	"errors"

	"menu-admin-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const selectCategories = `
SELECT c.id::text, c.name, c.slug, COALESCE(c.description, ''), c.is_active, c.created_at, c.updated_at,
       COALESCE(t.name, ''), COALESCE(t.description, '')
FROM categories c
LEFT JOIN categories_translations t ON t.category_id = c.id AND t.locale = 'ar'
`

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.Category, error) {
	q := selectCategories
	args := []any{}
	if filter.Search != "" {
		q += `
WHERE c.name ILIKE '%' || $1 || '%'
   OR c.description ILIKE '%' || $1 || '%'
   OR t.name ILIKE '%' || $1 || '%'
   OR t.description ILIKE '%' || $1 || '%'
`
		args = append(args, filter.Search)
	}
	q += `ORDER BY c.name ASC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.NameAr, &c.DescriptionAr); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, selectCategories+`WHERE c.id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.NameAr, &c.DescriptionAr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Category, tr *domain.Translation) (*domain.Category, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO categories (name, slug, description, is_active)
VALUES ($1, $2, NULLIF($3, ''), $4)
RETURNING id::text, created_at, updated_at
`
	out := c
	if err := tx.QueryRow(ctx, q, c.Name, c.Slug, c.Description, c.IsActive).
		Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt); err != nil {
		// Slug collisions surface as unique violations.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}

	if tr != nil {
		if err := upsertTranslation(ctx, tx, out.ID, *tr); err != nil {
			return nil, err
		}
		out.NameAr = tr.Name
		out.DescriptionAr = tr.Description
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, c domain.Category, tr *domain.Translation) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const q = `
UPDATE categories
SET name = $1,
    slug = $2,
    description = NULLIF($3, ''),
    is_active = $4,
    updated_at = now()
WHERE id = $5
`
	cmd, err := tx.Exec(ctx, q, c.Name, c.Slug, c.Description, c.IsActive, c.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyExists
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if tr != nil {
		if err := upsertTranslation(ctx, tx, c.ID, *tr); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func upsertTranslation(ctx context.Context, tx pgx.Tx, categoryID string, tr domain.Translation) error {
	const q = `
INSERT INTO categories_translations (category_id, locale, name, description)
VALUES ($1, $2, $3, NULLIF($4, ''))
ON CONFLICT (category_id, locale) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description
`
	_, err := tx.Exec(ctx, q, categoryID, tr.Locale, tr.Name, tr.Description)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) SetActive(ctx context.Context, id string, active bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE categories SET is_active = $1, updated_at = now() WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
