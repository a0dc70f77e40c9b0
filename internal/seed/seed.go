package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Category       string
	Name           string
	Description    string
	AllowsHalfHalf bool
	Prices         map[string]int64
}

type zoneSeed struct {
	Neighborhood string
	PriceCents   int64
}

// Apply inserts a demo pizzeria with a small menu for manual testing. It is
// idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	pizzeriaID, err := ensurePizzeria(ctx, pool, "ze", "Pizzaria do Zé", "5511988887777")
	if err != nil {
		return fmt.Errorf("ensure pizzeria: %w", err)
	}

	products := []productSeed{
		{
			Category:       "Pizzas Salgadas",
			Name:           "Calabresa",
			Description:    "Calabresa fatiada, cebola e azeitonas",
			AllowsHalfHalf: true,
			Prices:         map[string]int64{"Média": 3500, "Grande": 4500},
		},
		{
			Category:       "Pizzas Salgadas",
			Name:           "Quatro Queijos",
			Description:    "Mussarela, provolone, gorgonzola e catupiry",
			AllowsHalfHalf: true,
			Prices:         map[string]int64{"Média": 4200, "Grande": 5200},
		},
		{
			Category:    "Pizzas Doces",
			Name:        "Chocolate com Morango",
			Description: "Chocolate ao leite e morangos frescos",
			Prices:      map[string]int64{"Média": 3800, "Grande": 4800},
		},
		{
			Category: "Bebidas",
			Name:     "Refrigerante 2L",
			Prices:   map[string]int64{"Único": 1200},
		},
	}

	categoryIDs := map[string]string{}
	for _, p := range products {
		catID, ok := categoryIDs[p.Category]
		if !ok {
			catID, err = ensureCategory(ctx, pool, pizzeriaID, p.Category, len(categoryIDs))
			if err != nil {
				return fmt.Errorf("ensure category %s: %w", p.Category, err)
			}
			categoryIDs[p.Category] = catID
		}
		if err := upsertProduct(ctx, pool, pizzeriaID, catID, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	zones := []zoneSeed{
		{Neighborhood: "Centro", PriceCents: 500},
		{Neighborhood: "Jardim América", PriceCents: 800},
		{Neighborhood: "Vila Nova", PriceCents: 1000},
	}
	for _, z := range zones {
		if err := upsertZone(ctx, pool, pizzeriaID, z); err != nil {
			return fmt.Errorf("upsert zone %s: %w", z.Neighborhood, err)
		}
	}

	// Open every evening; Monday off.
	for weekday := 0; weekday < 7; weekday++ {
		closed := weekday == 1
		if err := upsertHours(ctx, pool, pizzeriaID, weekday, "18:00", "23:30", closed); err != nil {
			return fmt.Errorf("upsert hours weekday %d: %w", weekday, err)
		}
	}

	return nil
}

func ensurePizzeria(ctx context.Context, pool *pgxpool.Pool, slug, name, whatsapp string) (string, error) {
	const q = `
INSERT INTO pizzerias (slug, name, whatsapp_number)
VALUES ($1, $2, $3)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name, whatsapp_number = EXCLUDED.whatsapp_number
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, slug, name, whatsapp).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, pizzeriaID, name string, sortOrder int) (string, error) {
	const q = `
INSERT INTO categories (pizzeria_id, name, sort_order)
VALUES ($1, $2, $3)
ON CONFLICT (pizzeria_id, name) DO UPDATE SET sort_order = EXCLUDED.sort_order
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, pizzeriaID, name, sortOrder).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, pizzeriaID, categoryID string, p productSeed) error {
	const q = `
INSERT INTO products (pizzeria_id, category_id, name, description, available, allows_half_half)
VALUES ($1, $2, $3, NULLIF($4, ''), TRUE, $5)
ON CONFLICT (pizzeria_id, name) DO UPDATE
SET category_id = EXCLUDED.category_id,
    description = EXCLUDED.description,
    allows_half_half = EXCLUDED.allows_half_half
RETURNING id::text
`
	var productID string
	if err := pool.QueryRow(ctx, q, pizzeriaID, categoryID, p.Name, p.Description, p.AllowsHalfHalf).Scan(&productID); err != nil {
		return err
	}

	const qp = `
INSERT INTO product_prices (product_id, size_name, price_cents)
VALUES ($1, $2, $3)
ON CONFLICT (product_id, size_name) DO UPDATE SET price_cents = EXCLUDED.price_cents
`
	for size, cents := range p.Prices {
		if _, err := pool.Exec(ctx, qp, productID, size, cents); err != nil {
			return err
		}
	}
	return nil
}

func upsertZone(ctx context.Context, pool *pgxpool.Pool, pizzeriaID string, z zoneSeed) error {
	const q = `
INSERT INTO delivery_zones (pizzeria_id, neighborhood_name, price_cents, active)
VALUES ($1, $2, $3, TRUE)
ON CONFLICT (pizzeria_id, neighborhood_name) DO UPDATE SET price_cents = EXCLUDED.price_cents
`
	_, err := pool.Exec(ctx, q, pizzeriaID, z.Neighborhood, z.PriceCents)
	return err
}

func upsertHours(ctx context.Context, pool *pgxpool.Pool, pizzeriaID string, weekday int, openTime, closeTime string, closed bool) error {
	const q = `
INSERT INTO operating_hours (pizzeria_id, weekday, open_time, close_time, closed)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (pizzeria_id, weekday) DO UPDATE
SET open_time = EXCLUDED.open_time, close_time = EXCLUDED.close_time, closed = EXCLUDED.closed
`
	_, err := pool.Exec(ctx, q, pizzeriaID, weekday, openTime, closeTime, closed)
	return err
}
