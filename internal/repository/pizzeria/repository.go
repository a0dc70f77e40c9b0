package pizzeria

import (
	"context"

	"pizzaria-backend/internal/domain"
)

type Repository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Pizzeria, error)
	GetByID(ctx context.Context, id string) (*domain.Pizzeria, error)
	UpdateSettings(ctx context.Context, id, name, whatsappNumber string) (*domain.Pizzeria, error)
}
