package pricing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pizzaria-backend/internal/domain"
)

// Service recomputes an order's price from catalog data. Client-stated
// prices on cart lines are never read; the catalog is the only price source.
type Service struct {
	catalog catalogRepo
	zones   zoneRepo
}

type catalogRepo interface {
	GetPrice(ctx context.Context, pizzeriaID, productID, sizeName string) (*domain.ProductPrice, error)
}

type zoneRepo interface {
	GetActive(ctx context.Context, pizzeriaID, id string) (*domain.DeliveryZone, error)
}

func New(catalog catalogRepo, zones zoneRepo) *Service {
	return &Service{catalog: catalog, zones: zones}
}

// Quote is the authoritative server-side price of a submitted cart.
type Quote struct {
	Items            []domain.PricedLine
	Zone             *domain.DeliveryZone
	DeliveryFeeCents int64
	TotalCents       int64
}

// PriceOrder prices every cart line from the catalog and adds the zone fee
// once. An empty zoneID means pickup. Split-flavor lines are charged the
// higher of the two halves' prices at the chosen size; the second flavor
// must be offered at that size.
func (s *Service) PriceOrder(ctx context.Context, pizzeriaID string, lines []domain.CartLine, zoneID string) (*Quote, error) {
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	quote := &Quote{Items: make([]domain.PricedLine, 0, len(lines))}
	for _, line := range lines {
		priced, err := s.priceLine(ctx, pizzeriaID, line)
		if err != nil {
			return nil, err
		}
		quote.Items = append(quote.Items, *priced)
		quote.TotalCents += priced.LineTotalCents
	}

	if strings.TrimSpace(zoneID) != "" {
		zone, err := s.zones.GetActive(ctx, pizzeriaID, zoneID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrUnknownDeliveryZone
			}
			return nil, err
		}
		quote.Zone = zone
		quote.DeliveryFeeCents = zone.PriceCents
		quote.TotalCents += zone.PriceCents
	}

	return quote, nil
}

func (s *Service) priceLine(ctx context.Context, pizzeriaID string, line domain.CartLine) (*domain.PricedLine, error) {
	if line.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity %d for product %s", domain.ErrInvalidQuantity, line.Quantity, line.ProductID)
	}

	entry, err := s.lookup(ctx, pizzeriaID, line.ProductID, line.SizeName)
	if err != nil {
		return nil, err
	}
	unit := entry.PriceCents

	if line.SecondFlavorID != "" {
		second, err := s.lookup(ctx, pizzeriaID, line.SecondFlavorID, line.SizeName)
		if err != nil {
			return nil, err
		}
		// Split pizzas are charged at the pricier half.
		if second.PriceCents > unit {
			unit = second.PriceCents
		}
	}

	return &domain.PricedLine{
		ProductID:        line.ProductID,
		ProductName:      line.ProductName,
		SizeName:         line.SizeName,
		Quantity:         line.Quantity,
		SecondFlavorID:   line.SecondFlavorID,
		SecondFlavorName: line.SecondFlavorName,
		Observation:      line.Observation,
		UnitPriceCents:   unit,
		LineTotalCents:   unit * int64(line.Quantity),
	}, nil
}

func (s *Service) lookup(ctx context.Context, pizzeriaID, productID, sizeName string) (*domain.ProductPrice, error) {
	entry, err := s.catalog.GetPrice(ctx, pizzeriaID, productID, sizeName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %s size %q", domain.ErrUnknownProductOrSize, productID, sizeName)
		}
		return nil, err
	}
	return entry, nil
}
