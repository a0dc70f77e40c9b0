package cartcache

import (
	"context"

	"pizzaria-backend/internal/domain"
)

// Repository is a session-scoped cart cache keyed by (pizzeria, session).
// It stores whatever the storefront has picked so far; nothing in it is
// trusted at checkout, which re-prices every line from the catalog.
type Repository interface {
	Get(ctx context.Context, pizzeriaID, sessionID string) ([]domain.CartLine, error)
	Set(ctx context.Context, pizzeriaID, sessionID string, lines []domain.CartLine) error
	Clear(ctx context.Context, pizzeriaID, sessionID string) error
}
