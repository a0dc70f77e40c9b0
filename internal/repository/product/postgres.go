package product

import (
	"context"
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

const productColumns = `id::text, pizzeria_id::text, category_id::text, name, COALESCE(description, ''), COALESCE(image_url, ''), available, allows_half_half, created_at`

func (r *postgresRepo) ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE pizzeria_id = $1
ORDER BY name
`
	rows, err := r.pool.Query(ctx, q, pizzeriaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachPrices(ctx, pizzeriaID, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, pizzeriaID, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE pizzeria_id = $1 AND id = $2
`
	row := r.pool.QueryRow(ctx, q, pizzeriaID, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	prices, err := r.loadPrices(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Prices = prices
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO products (pizzeria_id, category_id, name, description, image_url, available, allows_half_half)
VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
RETURNING ` + productColumns
	row := tx.QueryRow(ctx, q, in.PizzeriaID, in.CategoryID, in.Name, in.Description, in.ImageURL, in.Available, in.AllowsHalfHalf)
	p, err := scanProduct(row)
	if err != nil {
		return nil, err
	}

	if err := replacePrices(ctx, tx, p.ID, in.Prices); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	p.Prices = in.Prices
	for i := range p.Prices {
		p.Prices[i].ProductID = p.ID
	}
	return p, nil
}

func (r *postgresRepo) Update(ctx context.Context, pizzeriaID, id string, in UpdateInput) (*domain.Product, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
UPDATE products
SET category_id = $3,
    name = $4,
    description = NULLIF($5, ''),
    image_url = NULLIF($6, ''),
    available = $7,
    allows_half_half = $8
WHERE pizzeria_id = $1 AND id = $2
RETURNING ` + productColumns
	row := tx.QueryRow(ctx, q, pizzeriaID, id, in.CategoryID, in.Name, in.Description, in.ImageURL, in.Available, in.AllowsHalfHalf)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := replacePrices(ctx, tx, id, in.Prices); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	p.Prices = in.Prices
	for i := range p.Prices {
		p.Prices[i].ProductID = id
	}
	return p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, pizzeriaID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE pizzeria_id = $1 AND id = $2`, pizzeriaID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) GetPrice(ctx context.Context, pizzeriaID, productID, sizeName string) (*domain.ProductPrice, error) {
	const q = `
SELECT pp.product_id::text, pp.size_name, pp.price_cents
FROM product_prices pp
JOIN products p ON p.id = pp.product_id
WHERE p.pizzeria_id = $1 AND pp.product_id = $2 AND pp.size_name = $3 AND p.available
`
	var pp domain.ProductPrice
	err := r.pool.QueryRow(ctx, q, pizzeriaID, productID, sizeName).
		Scan(&pp.ProductID, &pp.SizeName, &pp.PriceCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &pp, nil
}

func (r *postgresRepo) attachPrices(ctx context.Context, pizzeriaID string, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	const q = `
SELECT pp.product_id::text, pp.size_name, pp.price_cents
FROM product_prices pp
JOIN products p ON p.id = pp.product_id
WHERE p.pizzeria_id = $1
ORDER BY pp.price_cents
`
	rows, err := r.pool.Query(ctx, q, pizzeriaID)
	if err != nil {
		return err
	}
	defer rows.Close()

	byProduct := make(map[string][]domain.ProductPrice)
	for rows.Next() {
		var pp domain.ProductPrice
		if err := rows.Scan(&pp.ProductID, &pp.SizeName, &pp.PriceCents); err != nil {
			return err
		}
		byProduct[pp.ProductID] = append(byProduct[pp.ProductID], pp)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for i := range products {
		products[i].Prices = byProduct[products[i].ID]
	}
	return nil
}

func (r *postgresRepo) loadPrices(ctx context.Context, productID string) ([]domain.ProductPrice, error) {
	const q = `
SELECT product_id::text, size_name, price_cents
FROM product_prices
WHERE product_id = $1
ORDER BY price_cents
`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ProductPrice
	for rows.Next() {
		var pp domain.ProductPrice
		if err := rows.Scan(&pp.ProductID, &pp.SizeName, &pp.PriceCents); err != nil {
			return nil, err
		}
		out = append(out, pp)
	}
	return out, rows.Err()
}

func replacePrices(ctx context.Context, tx pgx.Tx, productID string, prices []domain.ProductPrice) error {
	if _, err := tx.Exec(ctx, `DELETE FROM product_prices WHERE product_id = $1`, productID); err != nil {
		return err
	}
	for _, pp := range prices {
		_, err := tx.Exec(ctx, `
INSERT INTO product_prices (product_id, size_name, price_cents)
VALUES ($1, $2, $3)
`, productID, pp.SizeName, pp.PriceCents)
		if err != nil {
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.PizzeriaID, &p.CategoryID, &p.Name, &p.Description, &p.ImageURL, &p.Available, &p.AllowsHalfHalf, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
