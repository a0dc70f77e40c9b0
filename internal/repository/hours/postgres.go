package hours

import (
	"context"

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

func (r *postgresRepo) ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.OperatingHours, error) {
	const q = `
SELECT id::text, pizzeria_id::text, weekday, open_time, close_time, closed
FROM operating_hours
WHERE pizzeria_id = $1
ORDER BY weekday, open_time
`
	rows, err := r.pool.Query(ctx, q, pizzeriaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.OperatingHours
	for rows.Next() {
		var h domain.OperatingHours
		if err := rows.Scan(&h.ID, &h.PizzeriaID, &h.Weekday, &h.OpenTime, &h.CloseTime, &h.Closed); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Replace(ctx context.Context, pizzeriaID string, schedule []domain.OperatingHours) ([]domain.OperatingHours, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM operating_hours WHERE pizzeria_id = $1`, pizzeriaID); err != nil {
		return nil, err
	}
	for _, h := range schedule {
		_, err := tx.Exec(ctx, `
INSERT INTO operating_hours (pizzeria_id, weekday, open_time, close_time, closed)
VALUES ($1, $2, $3, $4, $5)
`, pizzeriaID, h.Weekday, h.OpenTime, h.CloseTime, h.Closed)
		if err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.ListByPizzeria(ctx, pizzeriaID)
}
