package product

import (
	"context"

	"pizzaria-backend/internal/domain"
)

type CreateInput struct {
	PizzeriaID     string
	CategoryID     string
	Name           string
	Description    string
	ImageURL       string
	Available      bool
	AllowsHalfHalf bool
	Prices         []domain.ProductPrice
}

type UpdateInput struct {
	CategoryID     string
	Name           string
	Description    string
	ImageURL       string
	Available      bool
	AllowsHalfHalf bool
	Prices         []domain.ProductPrice
}

type Repository interface {
	ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.Product, error)
	GetByID(ctx context.Context, pizzeriaID, id string) (*domain.Product, error)
	Create(ctx context.Context, in CreateInput) (*domain.Product, error)
	Update(ctx context.Context, pizzeriaID, id string, in UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, pizzeriaID, id string) error

	// GetPrice looks up the authoritative price for one (product, size)
	// pair, scoped to the tenant. Returns domain.ErrNotFound when the
	// product is absent, unavailable, or not offered at that size.
	GetPrice(ctx context.Context, pizzeriaID, productID, sizeName string) (*domain.ProductPrice, error)
}
