package zone

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

const columns = `id::text, pizzeria_id::text, neighborhood_name, price_cents, active, created_at`

func (r *postgresRepo) ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.DeliveryZone, error) {
	const q = `
SELECT ` + columns + `
FROM delivery_zones
WHERE pizzeria_id = $1
ORDER BY neighborhood_name
`
	rows, err := r.pool.Query(ctx, q, pizzeriaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DeliveryZone
	for rows.Next() {
		var z domain.DeliveryZone
		if err := rows.Scan(&z.ID, &z.PizzeriaID, &z.NeighborhoodName, &z.PriceCents, &z.Active, &z.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, z)
	}
	return out, rows.Err()
}

func (r *postgresRepo) GetActive(ctx context.Context, pizzeriaID, id string) (*domain.DeliveryZone, error) {
	const q = `
SELECT ` + columns + `
FROM delivery_zones
WHERE pizzeria_id = $1 AND id = $2 AND active
`
	return r.scanOne(ctx, q, pizzeriaID, id)
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.DeliveryZone, error) {
	const q = `
INSERT INTO delivery_zones (pizzeria_id, neighborhood_name, price_cents, active)
VALUES ($1, $2, $3, $4)
RETURNING ` + columns
	return r.scanOne(ctx, q, in.PizzeriaID, in.NeighborhoodName, in.PriceCents, in.Active)
}

func (r *postgresRepo) Update(ctx context.Context, pizzeriaID, id, neighborhoodName string, priceCents int64, active bool) (*domain.DeliveryZone, error) {
	const q = `
UPDATE delivery_zones
SET neighborhood_name = $3, price_cents = $4, active = $5
WHERE pizzeria_id = $1 AND id = $2
RETURNING ` + columns
	return r.scanOne(ctx, q, pizzeriaID, id, neighborhoodName, priceCents, active)
}

func (r *postgresRepo) Delete(ctx context.Context, pizzeriaID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM delivery_zones WHERE pizzeria_id = $1 AND id = $2`, pizzeriaID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanOne(ctx context.Context, q string, args ...any) (*domain.DeliveryZone, error) {
	var z domain.DeliveryZone
	err := r.pool.QueryRow(ctx, q, args...).
		Scan(&z.ID, &z.PizzeriaID, &z.NeighborhoodName, &z.PriceCents, &z.Active, &z.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &z, nil
}
