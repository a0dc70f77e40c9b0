package order

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"pizzaria-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
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

const columns = `id::text, pizzeria_id::text, order_number, status, customer_name, customer_phone,
delivery_address, payment_method, change_for_cents, items, delivery_fee_cents, total_cents,
COALESCE(cancellation_reason, ''), created_at`

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	items, err := json.Marshal(in.Items)
	if err != nil {
		return nil, err
	}

	// order_number is a per-tenant counter bumped inside the insert so two
	// concurrent checkouts never share a number.
	const q = `
INSERT INTO orders (pizzeria_id, order_number, status, customer_name, customer_phone,
	delivery_address, payment_method, change_for_cents, items, delivery_fee_cents, total_cents)
SELECT $1, COALESCE(MAX(order_number), 0) + 1, 'pending', $2, $3, $4, $5, $6, $7::jsonb, $8, $9
FROM orders WHERE pizzeria_id = $1
RETURNING ` + columns
	row := r.pool.QueryRow(ctx, q,
		in.PizzeriaID, in.CustomerName, in.CustomerPhone, in.DeliveryAddress,
		in.PaymentMethod, in.ChangeForCents, items, in.DeliveryFeeCents, in.TotalCents)
	return scanOrder(row)
}

func (r *postgresRepo) GetByID(ctx context.Context, pizzeriaID, id string) (*domain.Order, error) {
	const q = `
SELECT ` + columns + `
FROM orders
WHERE pizzeria_id = $1 AND id = $2
`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, pizzeriaID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.Order, error) {
	const q = `
SELECT ` + columns + `
FROM orders
WHERE pizzeria_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, pizzeriaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, pizzeriaID, id string, expected, next domain.OrderStatus, cancellationReason string) (*domain.Order, error) {
	const q = `
UPDATE orders
SET status = $4,
    cancellation_reason = NULLIF($5, '')
WHERE pizzeria_id = $1 AND id = $2 AND status = $3
RETURNING ` + columns
	o, err := scanOrder(r.pool.QueryRow(ctx, q, pizzeriaID, id, string(expected), string(next), cancellationReason))
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// No row matched: either the order is gone or its status moved on.
	if _, getErr := r.GetByID(ctx, pizzeriaID, id); getErr != nil {
		return nil, getErr
	}
	r.logger.Printf("status conflict on order %s: expected %s", id, expected)
	return nil, domain.ErrConflict
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	var items []byte
	var status string
	err := row.Scan(&o.ID, &o.PizzeriaID, &o.OrderNumber, &status, &o.CustomerName, &o.CustomerPhone,
		&o.DeliveryAddress, &o.PaymentMethod, &o.ChangeForCents, &items, &o.DeliveryFeeCents,
		&o.TotalCents, &o.CancellationReason, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	o.Status = domain.OrderStatus(status)
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}
	}
	return &o, nil
}
