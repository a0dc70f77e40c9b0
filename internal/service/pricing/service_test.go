package pricing

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"pizzaria-backend/internal/domain"
)

type stubCatalog struct {
	prices map[string]int64 // key: productID|sizeName
}

func (s *stubCatalog) GetPrice(_ context.Context, _, productID, sizeName string) (*domain.ProductPrice, error) {
	cents, ok := s.prices[productID+"|"+sizeName]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.ProductPrice{ProductID: productID, SizeName: sizeName, PriceCents: cents}, nil
}

type stubZones struct {
	zone *domain.DeliveryZone
	err  error
}

func (s *stubZones) GetActive(_ context.Context, _, _ string) (*domain.DeliveryZone, error) {
	return s.zone, s.err
}

func newService(prices map[string]int64, zone *domain.DeliveryZone, zoneErr error) *Service {
	return New(&stubCatalog{prices: prices}, &stubZones{zone: zone, err: zoneErr})
}

func TestPriceOrderEmptyCart(t *testing.T) {
	svc := newService(nil, nil, nil)
	if _, err := svc.PriceOrder(context.Background(), "pz", nil, ""); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestPriceOrderInvalidQuantity(t *testing.T) {
	svc := newService(map[string]int64{"p1|Media": 2800}, nil, nil)
	lines := []domain.CartLine{{ProductID: "p1", SizeName: "Media", Quantity: 0}}
	if _, err := svc.PriceOrder(context.Background(), "pz", lines, ""); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	lines[0].Quantity = -3
	if _, err := svc.PriceOrder(context.Background(), "pz", lines, ""); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestPriceOrderUnknownProduct(t *testing.T) {
	svc := newService(map[string]int64{"p1|Media": 2800}, nil, nil)
	lines := []domain.CartLine{{ProductID: "p1", SizeName: "Gigante", Quantity: 1}}
	if _, err := svc.PriceOrder(context.Background(), "pz", lines, ""); !errors.Is(err, domain.ErrUnknownProductOrSize) {
		t.Fatalf("expected ErrUnknownProductOrSize, got %v", err)
	}
}

func TestPriceOrderUnknownSecondFlavor(t *testing.T) {
	// Second flavor exists but not at the chosen size.
	svc := newService(map[string]int64{"p1|Grande": 3000, "p2|Media": 2500}, nil, nil)
	lines := []domain.CartLine{{ProductID: "p1", SizeName: "Grande", Quantity: 1, SecondFlavorID: "p2"}}
	if _, err := svc.PriceOrder(context.Background(), "pz", lines, ""); !errors.Is(err, domain.ErrUnknownProductOrSize) {
		t.Fatalf("expected ErrUnknownProductOrSize, got %v", err)
	}
}

func TestPriceOrderSplitFlavorChargesPricierHalf(t *testing.T) {
	prices := map[string]int64{"a|Grande": 3000, "b|Grande": 3500}
	svc := newService(prices, nil, nil)

	lines := []domain.CartLine{{ProductID: "a", SizeName: "Grande", Quantity: 1, SecondFlavorID: "b"}}
	quote, err := svc.PriceOrder(context.Background(), "pz", lines, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Items[0].UnitPriceCents != 3500 {
		t.Fatalf("expected 3500, got %d", quote.Items[0].UnitPriceCents)
	}

	// Order of the halves must not matter.
	lines = []domain.CartLine{{ProductID: "b", SizeName: "Grande", Quantity: 1, SecondFlavorID: "a"}}
	quote, err = svc.PriceOrder(context.Background(), "pz", lines, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Items[0].UnitPriceCents != 3500 {
		t.Fatalf("expected 3500 regardless of half order, got %d", quote.Items[0].UnitPriceCents)
	}
}

func TestPriceOrderIgnoresClientStatedPrice(t *testing.T) {
	svc := newService(map[string]int64{"p1|Media": 4500}, nil, nil)
	lines := []domain.CartLine{{ProductID: "p1", SizeName: "Media", Quantity: 2, StatedPriceCents: 1}}
	quote, err := svc.PriceOrder(context.Background(), "pz", lines, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Items[0].LineTotalCents != 9000 {
		t.Fatalf("expected 9000, got %d", quote.Items[0].LineTotalCents)
	}
}

func TestPriceOrderUnknownZone(t *testing.T) {
	svc := newService(map[string]int64{"p1|Media": 2800}, nil, domain.ErrNotFound)
	lines := []domain.CartLine{{ProductID: "p1", SizeName: "Media", Quantity: 1}}
	if _, err := svc.PriceOrder(context.Background(), "pz", lines, "z1"); !errors.Is(err, domain.ErrUnknownDeliveryZone) {
		t.Fatalf("expected ErrUnknownDeliveryZone, got %v", err)
	}
}

func TestPriceOrderPickupHasNoFee(t *testing.T) {
	svc := newService(map[string]int64{"p1|Media": 2800}, nil, nil)
	lines := []domain.CartLine{{ProductID: "p1", SizeName: "Media", Quantity: 1}}
	quote, err := svc.PriceOrder(context.Background(), "pz", lines, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.DeliveryFeeCents != 0 || quote.TotalCents != 2800 {
		t.Fatalf("unexpected quote fee=%d total=%d", quote.DeliveryFeeCents, quote.TotalCents)
	}
}

func TestPriceOrderScenario(t *testing.T) {
	// margherita/Media = 28.00, pepperoni/Media = 32.00, zone Centro = 5.00.
	prices := map[string]int64{"margherita|Media": 2800, "pepperoni|Media": 3200}
	zone := &domain.DeliveryZone{ID: "z1", NeighborhoodName: "Centro", PriceCents: 500, Active: true}
	svc := newService(prices, zone, nil)

	lines := []domain.CartLine{
		{ProductID: "margherita", SizeName: "Media", Quantity: 1},
		{ProductID: "pepperoni", SizeName: "Media", Quantity: 1, SecondFlavorID: "margherita"},
	}
	quote, err := svc.PriceOrder(context.Background(), "pz", lines, "z1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Items[0].LineTotalCents != 2800 {
		t.Fatalf("line1 total: expected 2800, got %d", quote.Items[0].LineTotalCents)
	}
	if quote.Items[1].UnitPriceCents != 3200 || quote.Items[1].LineTotalCents != 3200 {
		t.Fatalf("line2: expected unit 3200, got %+v", quote.Items[1])
	}
	if quote.TotalCents != 6500 {
		t.Fatalf("expected total 6500, got %d", quote.TotalCents)
	}
}

func TestPriceOrderDeterministic(t *testing.T) {
	prices := map[string]int64{"a|Grande": 3000, "b|Grande": 3500}
	zone := &domain.DeliveryZone{ID: "z1", PriceCents: 700, Active: true}
	svc := newService(prices, zone, nil)
	lines := []domain.CartLine{
		{ProductID: "a", SizeName: "Grande", Quantity: 2, SecondFlavorID: "b", Observation: "bem passada"},
	}

	first, err := svc.PriceOrder(context.Background(), "pz", lines, "z1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.PriceOrder(context.Background(), "pz", lines, "z1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("pricing is not deterministic:\n%+v\n%+v", first, second)
	}
}
