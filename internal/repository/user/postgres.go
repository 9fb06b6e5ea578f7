package user

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

func (r *postgresRepo) Create(ctx context.Context, rec Record) (*domain.User, error) {
	const q = `
INSERT INTO users (email, password_hash, first_name, last_name, phone_number, role)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6)
RETURNING id::text, created_at
`
	out := rec.User
	err := r.pool.QueryRow(ctx, q, rec.Email, rec.PasswordHash, rec.FirstName, rec.LastName, rec.PhoneNumber, rec.Role).
		Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &out, nil
}

const selectUser = `
SELECT id::text, email, password_hash, COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(phone_number, ''), role::text, created_at
FROM users
`

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Record, error) {
	return r.fetch(ctx, selectUser+`WHERE id = $1`, id)
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*Record, error) {
	return r.fetch(ctx, selectUser+`WHERE email = $1`, email)
}

func (r *postgresRepo) fetch(ctx context.Context, q string, arg any) (*Record, error) {
	var rec Record
	err := r.pool.QueryRow(ctx, q, arg).Scan(
		&rec.ID,
		&rec.Email,
		&rec.PasswordHash,
		&rec.FirstName,
		&rec.LastName,
		&rec.PhoneNumber,
		&rec.Role,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}
