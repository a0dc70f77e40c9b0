package category

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

func (r *postgresRepo) ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.Category, error) {
	const q = `
SELECT id::text, pizzeria_id::text, name, sort_order, created_at
FROM categories
WHERE pizzeria_id = $1
ORDER BY sort_order, name
`
	rows, err := r.pool.Query(ctx, q, pizzeriaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.PizzeriaID, &c.Name, &c.SortOrder, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Category, error) {
	const q = `
INSERT INTO categories (pizzeria_id, name, sort_order)
VALUES ($1, $2, $3)
RETURNING id::text, pizzeria_id::text, name, sort_order, created_at
`
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, in.PizzeriaID, in.Name, in.SortOrder).
		Scan(&c.ID, &c.PizzeriaID, &c.Name, &c.SortOrder, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Update(ctx context.Context, pizzeriaID, id, name string, sortOrder int) (*domain.Category, error) {
	const q = `
UPDATE categories
SET name = $3, sort_order = $4
WHERE pizzeria_id = $1 AND id = $2
RETURNING id::text, pizzeria_id::text, name, sort_order, created_at
`
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, pizzeriaID, id, name, sortOrder).
		Scan(&c.ID, &c.PizzeriaID, &c.Name, &c.SortOrder, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Delete(ctx context.Context, pizzeriaID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE pizzeria_id = $1 AND id = $2`, pizzeriaID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
