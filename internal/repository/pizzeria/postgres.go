package pizzeria

import (
	"context"
	"errors"

	"pizzaria-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const columns = `id::text, name, slug, whatsapp_number, created_at`

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Pizzeria, error) {
	const q = `SELECT ` + columns + ` FROM pizzerias WHERE slug = $1`
	return r.scanOne(ctx, q, slug)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Pizzeria, error) {
	const q = `SELECT ` + columns + ` FROM pizzerias WHERE id = $1`
	return r.scanOne(ctx, q, id)
}

func (r *postgresRepo) UpdateSettings(ctx context.Context, id, name, whatsappNumber string) (*domain.Pizzeria, error) {
	const q = `
UPDATE pizzerias
SET name = $2, whatsapp_number = $3
WHERE id = $1
RETURNING ` + columns
	return r.scanOne(ctx, q, id, name, whatsappNumber)
}

func (r *postgresRepo) scanOne(ctx context.Context, q string, args ...any) (*domain.Pizzeria, error) {
	var p domain.Pizzeria
	err := r.pool.QueryRow(ctx, q, args...).Scan(&p.ID, &p.Name, &p.Slug, &p.WhatsAppNumber, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
