package menuitem

import (
	"context"
	"errors"
	"io"
	"log"
	"strconv"

	"menu-admin-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const selectItems = `
SELECT m.id::text, m.category_id::text, m.name, m.slug, COALESCE(m.description, ''), m.availability, m.is_active, COALESCE(m.image_key, ''), m.created_at, m.updated_at,
       COALESCE(t.name, ''), COALESCE(t.description, ''), c.name
FROM menu_items m
JOIN categories c ON c.id = m.category_id
LEFT JOIN menu_items_translations t ON t.menu_item_id = m.id AND t.locale = 'ar'
`

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.MenuItem, error) {
	q := selectItems + `WHERE 1=1`
	args := []any{}

	if len(filter.CategoryIDs) > 0 {
		args = append(args, filter.CategoryIDs)
		q += `
  AND m.category_id = ANY($1)`
	}
	if len(filter.ActiveStatuses) > 0 {
		args = append(args, filter.ActiveStatuses)
		q += `
  AND m.is_active = ANY($` + strconv.Itoa(len(args)) + `)`
	}
	if filter.Search != "" {
		ids, err := r.searchIDs(ctx, filter.Search)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return nil, nil
		}
		args = append(args, ids)
		q += `
  AND m.id = ANY($` + strconv.Itoa(len(args)) + `)`
	}
	q += `
ORDER BY m.name ASC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("menuitem repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.MenuItem
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(
			&m.ID, &m.CategoryID, &m.Name, &m.Slug, &m.Description, &m.Availability, &m.IsActive, &m.ImageKey,
			&m.CreatedAt, &m.UpdatedAt, &m.NameAr, &m.DescriptionAr, &m.CategoryName,
		); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachSizes(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// searchIDs runs the three case-insensitive match queries concurrently and
// unions their id sets: primary-locale name, description, and the
// secondary-locale translation text.
func (r *postgresRepo) searchIDs(ctx context.Context, search string) ([]string, error) {
	queries := []string{
		`SELECT id::text FROM menu_items WHERE name ILIKE '%' || $1 || '%'`,
		`SELECT id::text FROM menu_items WHERE description ILIKE '%' || $1 || '%'`,
		`SELECT menu_item_id::text FROM menu_items_translations
		 WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'`,
	}

	sets := make([][]string, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			rows, err := r.pool.Query(gctx, q, search)
			if err != nil {
				return err
			}
			defer rows.Close()
			for rows.Next() {
				var id string
				if err := rows.Scan(&id); err != nil {
					return err
				}
				sets[i] = append(sets[i], id)
			}
			return rows.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var ids []string
	for _, set := range sets {
		for _, id := range set {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids, nil
}

func (r *postgresRepo) attachSizes(ctx context.Context, items []domain.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]string, len(items))
	for i, m := range items {
		ids[i] = m.ID
	}

	const q = `
SELECT s.id::text, s.menu_item_id::text, s.price, s.is_active,
       COALESCE(en.name, ''), COALESCE(ar.name, '')
FROM menu_item_sizes s
LEFT JOIN menu_item_size_translations en ON en.menu_item_size_id = s.id AND en.locale = 'en'
LEFT JOIN menu_item_size_translations ar ON ar.menu_item_size_id = s.id AND ar.locale = 'ar'
WHERE s.menu_item_id = ANY($1)
ORDER BY s.price ASC
`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byItem := make(map[string][]domain.MenuItemSize)
	for rows.Next() {
		var s domain.MenuItemSize
		if err := rows.Scan(&s.ID, &s.MenuItemID, &s.Price, &s.IsActive, &s.Name, &s.NameAr); err != nil {
			return err
		}
		byItem[s.MenuItemID] = append(byItem[s.MenuItemID], s)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range items {
		items[i].Sizes = byItem[items[i].ID]
	}
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	var m domain.MenuItem
	err := r.pool.QueryRow(ctx, selectItems+`WHERE m.id = $1`, id).Scan(
		&m.ID, &m.CategoryID, &m.Name, &m.Slug, &m.Description, &m.Availability, &m.IsActive, &m.ImageKey,
		&m.CreatedAt, &m.UpdatedAt, &m.NameAr, &m.DescriptionAr, &m.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	items := []domain.MenuItem{m}
	if err := r.attachSizes(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

// isUniqueViolation reports whether err is a Postgres unique
// constraint violation, which here means a slug collision.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *postgresRepo) Create(ctx context.Context, in WriteInput) (*domain.MenuItem, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO menu_items (category_id, name, slug, description, availability, is_active, image_key)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''))
RETURNING id::text, created_at, updated_at
`
	out := in.Item
	if err := tx.QueryRow(ctx, q,
		in.Item.CategoryID, in.Item.Name, in.Item.Slug, in.Item.Description,
		in.Item.Availability, in.Item.IsActive, in.Item.ImageKey,
	).Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt); err != nil {
		r.logger.Printf("menuitem repo: insert name=%q error=%v", in.Item.Name, err)
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}

	if err := insertSizes(ctx, tx, out.ID, in.Sizes); err != nil {
		return nil, err
	}
	if err := upsertChildren(ctx, tx, out.ID, in); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	out.Sizes = in.Sizes
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, in WriteInput) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const q = `
UPDATE menu_items
SET category_id = $1,
    name = $2,
    slug = $3,
    description = NULLIF($4, ''),
    availability = $5,
    is_active = $6,
    image_key = NULLIF($7, ''),
    updated_at = now()
WHERE id = $8
`
	cmd, err := tx.Exec(ctx, q,
		in.Item.CategoryID, in.Item.Name, in.Item.Slug, in.Item.Description,
		in.Item.Availability, in.Item.IsActive, in.Item.ImageKey, in.Item.ID,
	)
	if err != nil {
		r.logger.Printf("menuitem repo: update id=%s error=%v", in.Item.ID, err)
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	// Full replace: drop the existing size set and recreate it from the
	// input. Translation rows go with their sizes via the cascade.
	if _, err := tx.Exec(ctx, `DELETE FROM menu_item_sizes WHERE menu_item_id = $1`, in.Item.ID); err != nil {
		return err
	}
	if err := insertSizes(ctx, tx, in.Item.ID, in.Sizes); err != nil {
		return err
	}
	if err := upsertChildren(ctx, tx, in.Item.ID, in); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// insertSizes writes size rows and their translation rows in one batch. Size
// identifiers are assigned by the caller, so translations can reference them
// without reading anything back.
func insertSizes(ctx context.Context, tx pgx.Tx, itemID string, sizes []domain.MenuItemSize) error {
	if len(sizes) == 0 {
		return nil
	}
	b := &pgx.Batch{}
	for _, s := range sizes {
		b.Queue(`INSERT INTO menu_item_sizes (id, menu_item_id, price, is_active) VALUES ($1, $2, $3, $4)`,
			s.ID, itemID, s.Price, s.IsActive)
		b.Queue(`INSERT INTO menu_item_size_translations (menu_item_size_id, locale, name) VALUES ($1, 'en', $2)`,
			s.ID, s.Name)
		if s.NameAr != "" {
			b.Queue(`INSERT INTO menu_item_size_translations (menu_item_size_id, locale, name) VALUES ($1, 'ar', $2)`,
				s.ID, s.NameAr)
		}
	}
	return tx.SendBatch(ctx, b).Close()
}

func upsertChildren(ctx context.Context, tx pgx.Tx, itemID string, in WriteInput) error {
	if tr := in.Translation; tr != nil {
		const q = `
INSERT INTO menu_items_translations (menu_item_id, locale, name, description)
VALUES ($1, $2, $3, NULLIF($4, ''))
ON CONFLICT (menu_item_id, locale) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description
`
		if _, err := tx.Exec(ctx, q, itemID, tr.Locale, tr.Name, tr.Description); err != nil {
			return err
		}
	}

	if p := in.Price; p != nil {
		const q = `
INSERT INTO menu_item_price (menu_item_id, type, count, price)
VALUES ($1, $2, $3, $4)
ON CONFLICT (menu_item_id, type) DO UPDATE
SET count = EXCLUDED.count,
    price = EXCLUDED.price
`
		if _, err := tx.Exec(ctx, q, itemID, p.Type, p.Count, p.Price); err != nil {
			return err
		}
	}

	if l := in.Limit; l != nil {
		const q = `
INSERT INTO menu_item_max_order_limits (menu_item_id, unit, limit_value)
VALUES ($1, $2, $3)
ON CONFLICT (menu_item_id, unit) DO UPDATE
SET limit_value = EXCLUDED.limit_value
`
		if _, err := tx.Exec(ctx, q, itemID, l.Unit, l.LimitValue); err != nil {
			return err
		}
	}

	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) SetActive(ctx context.Context, id string, active bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE menu_items SET is_active = $1, updated_at = now() WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) DeletePrice(ctx context.Context, priceID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM menu_item_price WHERE id = $1`, priceID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ListPublic(ctx context.Context, locale string, limit int) ([]domain.PublicMenuItem, error) {
	const q = `
SELECT m.id::text, m.name, COALESCE(m.description, ''), m.availability, COALESCE(m.image_key, ''),
       c.id::text, c.name,
       COALESCE(t.name, ''), COALESCE(t.description, ''), COALESCE(ct.name, '')
FROM menu_items m
JOIN categories c ON c.id = m.category_id
LEFT JOIN menu_items_translations t ON t.menu_item_id = m.id AND t.locale = $1
LEFT JOIN categories_translations ct ON ct.category_id = c.id AND ct.locale = $1
WHERE m.is_active = true
ORDER BY m.name ASC
LIMIT $2
`
	rows, err := r.pool.Query(ctx, q, locale, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PublicMenuItem
	var ids []string
	for rows.Next() {
		var p domain.PublicMenuItem
		var trName, trDesc, trCat string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Availability, &p.ImageKey,
			&p.CategoryID, &p.CategoryName, &trName, &trDesc, &trCat); err != nil {
			return nil, err
		}
		if trName != "" {
			p.Name = trName
		}
		if trDesc != "" {
			p.Description = trDesc
		}
		if trCat != "" {
			p.CategoryName = trCat
		}
		result = append(result, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	const sq = `
SELECT s.id::text, s.menu_item_id::text, s.price, s.is_active,
       COALESCE(en.name, ''), COALESCE(loc.name, '')
FROM menu_item_sizes s
LEFT JOIN menu_item_size_translations en ON en.menu_item_size_id = s.id AND en.locale = 'en'
LEFT JOIN menu_item_size_translations loc ON loc.menu_item_size_id = s.id AND loc.locale = $2
WHERE s.menu_item_id = ANY($1) AND s.is_active = true
ORDER BY s.price ASC
`
	srows, err := r.pool.Query(ctx, sq, ids, locale)
	if err != nil {
		return nil, err
	}
	defer srows.Close()

	byItem := make(map[string][]domain.MenuItemSize)
	for srows.Next() {
		var s domain.MenuItemSize
		var locName string
		if err := srows.Scan(&s.ID, &s.MenuItemID, &s.Price, &s.IsActive, &s.Name, &locName); err != nil {
			return nil, err
		}
		if locName != "" {
			s.Name = locName
		}
		byItem[s.MenuItemID] = append(byItem[s.MenuItemID], s)
	}
	if err := srows.Err(); err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Sizes = byItem[result[i].ID]
	}
	return result, nil
}

