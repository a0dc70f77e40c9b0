package category

import (
	"context"

	"pizzaria-backend/internal/domain"
)

type CreateInput struct {
	PizzeriaID string
	Name       string
	SortOrder  int
}

type Repository interface {
	ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.Category, error)
	Create(ctx context.Context, in CreateInput) (*domain.Category, error)
	Update(ctx context.Context, pizzeriaID, id, name string, sortOrder int) (*domain.Category, error)
	Delete(ctx context.Context, pizzeriaID, id string) error
}
