package hours

import (
	"context"

	"pizzaria-backend/internal/domain"
)

type Repository interface {
	ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.OperatingHours, error)
	// Replace swaps the full weekly schedule in one transaction.
	Replace(ctx context.Context, pizzeriaID string, schedule []domain.OperatingHours) ([]domain.OperatingHours, error)
}
