package httpserver

import (
	"context"

	"pizzaria-backend/internal/domain"
	categoryrepo "pizzaria-backend/internal/repository/category"
	productrepo "pizzaria-backend/internal/repository/product"
	zonerepo "pizzaria-backend/internal/repository/zone"
	ordersvc "pizzaria-backend/internal/service/order"
)

type pizzeriaRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Pizzeria, error)
	UpdateSettings(ctx context.Context, id, name, whatsappNumber string) (*domain.Pizzeria, error)
}

type categoryRepo interface {
	ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.Category, error)
	Create(ctx context.Context, in categoryrepo.CreateInput) (*domain.Category, error)
	Update(ctx context.Context, pizzeriaID, id, name string, sortOrder int) (*domain.Category, error)
	Delete(ctx context.Context, pizzeriaID, id string) error
}

type productRepo interface {
	ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.Product, error)
	Create(ctx context.Context, in productrepo.CreateInput) (*domain.Product, error)
	Update(ctx context.Context, pizzeriaID, id string, in productrepo.UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, pizzeriaID, id string) error
}

type zoneRepo interface {
	ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.DeliveryZone, error)
	Create(ctx context.Context, in zonerepo.CreateInput) (*domain.DeliveryZone, error)
	Update(ctx context.Context, pizzeriaID, id, neighborhoodName string, priceCents int64, active bool) (*domain.DeliveryZone, error)
	Delete(ctx context.Context, pizzeriaID, id string) error
}

type hoursRepo interface {
	ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.OperatingHours, error)
	Replace(ctx context.Context, pizzeriaID string, schedule []domain.OperatingHours) ([]domain.OperatingHours, error)
}

type cartService interface {
	Get(ctx context.Context, pizzeriaID, sessionID string) ([]domain.CartLine, error)
	Add(ctx context.Context, pizzeriaID, sessionID string, line domain.CartLine) ([]domain.CartLine, error)
	UpdateQuantity(ctx context.Context, pizzeriaID, sessionID string, index, delta int) ([]domain.CartLine, error)
	Remove(ctx context.Context, pizzeriaID, sessionID string, index int) ([]domain.CartLine, error)
	Clear(ctx context.Context, pizzeriaID, sessionID string) error
}

type orderService interface {
	Checkout(ctx context.Context, pizzeria *domain.Pizzeria, in ordersvc.CheckoutInput) (*domain.Order, error)
	Get(ctx context.Context, pizzeriaID, id string) (*domain.Order, error)
	List(ctx context.Context, pizzeriaID string) ([]domain.Order, error)
	Advance(ctx context.Context, pizzeria *domain.Pizzeria, orderID string) (*domain.Order, error)
	Cancel(ctx context.Context, pizzeria *domain.Pizzeria, orderID, selectedReason, freeText string) (*domain.Order, error)
	PrintReceipt(ctx context.Context, pizzeria *domain.Pizzeria, orderID string) error
	EncodeReceipt(ctx context.Context, pizzeria *domain.Pizzeria, orderID string) ([]byte, error)
}
