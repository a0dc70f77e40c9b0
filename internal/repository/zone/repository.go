package zone

import (
	"context"

	"pizzaria-backend/internal/domain"
)

type CreateInput struct {
	PizzeriaID       string
	NeighborhoodName string
	PriceCents       int64
	Active           bool
}

type Repository interface {
	ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.DeliveryZone, error)
	// GetActive returns the zone only when it exists and is active;
	// inactive zones yield domain.ErrNotFound so checkout treats them as
	// unknown.
	GetActive(ctx context.Context, pizzeriaID, id string) (*domain.DeliveryZone, error)
	Create(ctx context.Context, in CreateInput) (*domain.DeliveryZone, error)
	Update(ctx context.Context, pizzeriaID, id, neighborhoodName string, priceCents int64, active bool) (*domain.DeliveryZone, error)
	Delete(ctx context.Context, pizzeriaID, id string) error
}
