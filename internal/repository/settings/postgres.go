package settings

import (
	"context"
	"errors"

	"menu-admin-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context) (*domain.SiteSettings, error) {
	const q = `
SELECT COALESCE(hero_image_key, ''), call_phone_number, whatsapp_phone_number, opening_hours_en, opening_hours_ar, closed_days
FROM site_settings
WHERE id = 1
`
	var s domain.SiteSettings
	if err := r.pool.QueryRow(ctx, q).Scan(
		&s.HeroImageKey,
		&s.CallPhoneNumber,
		&s.WhatsappPhoneNumber,
		&s.OpeningHoursEn,
		&s.OpeningHoursAr,
		&s.ClosedDays,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if s.ClosedDays == nil {
		s.ClosedDays = []string{}
	}
	return &s, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, s domain.SiteSettings) error {
	const q = `
INSERT INTO site_settings (id, hero_image_key, call_phone_number, whatsapp_phone_number, opening_hours_en, opening_hours_ar, closed_days, updated_at)
VALUES (1, NULLIF($1, ''), $2, $3, $4, $5, $6, now())
ON CONFLICT (id) DO UPDATE
SET hero_image_key = EXCLUDED.hero_image_key,
    call_phone_number = EXCLUDED.call_phone_number,
    whatsapp_phone_number = EXCLUDED.whatsapp_phone_number,
    opening_hours_en = EXCLUDED.opening_hours_en,
    opening_hours_ar = EXCLUDED.opening_hours_ar,
    closed_days = EXCLUDED.closed_days,
    updated_at = now()
`
	_, err := r.pool.Exec(ctx, q, s.HeroImageKey, s.CallPhoneNumber, s.WhatsappPhoneNumber, s.OpeningHoursEn, s.OpeningHoursAr, s.ClosedDays)
	return err
}
