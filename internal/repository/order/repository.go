package order

import (
	"context"

	"pizzaria-backend/internal/domain"
)

type CreateInput struct {
	PizzeriaID       string
	CustomerName     string
	CustomerPhone    string
	DeliveryAddress  string
	PaymentMethod    string
	ChangeForCents   int64
	Items            []domain.PricedLine
	DeliveryFeeCents int64
	TotalCents       int64
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Order, error)
	GetByID(ctx context.Context, pizzeriaID, id string) (*domain.Order, error)
	ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.Order, error)

	// UpdateStatus performs a conditional single-row update: the status is
	// changed only while the stored status still equals expected. A
	// concurrent transition that got there first surfaces as
	// domain.ErrConflict.
	UpdateStatus(ctx context.Context, pizzeriaID, id string, expected, next domain.OrderStatus, cancellationReason string) (*domain.Order, error)
}
