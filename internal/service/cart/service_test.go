package cart

import (
	"context"
	"errors"
	"testing"

	"pizzaria-backend/internal/domain"
)

type memCache struct {
	lines   map[string][]domain.CartLine
	getErr  error
	setErr  error
	cleared bool
}

func newMemCache() *memCache {
	return &memCache{lines: make(map[string][]domain.CartLine)}
}

func (m *memCache) key(pizzeriaID, sessionID string) string {
	return pizzeriaID + "/" + sessionID
}

func (m *memCache) Get(_ context.Context, pizzeriaID, sessionID string) ([]domain.CartLine, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.lines[m.key(pizzeriaID, sessionID)], nil
}

func (m *memCache) Set(_ context.Context, pizzeriaID, sessionID string, lines []domain.CartLine) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.lines[m.key(pizzeriaID, sessionID)] = lines
	return nil
}

func (m *memCache) Clear(_ context.Context, pizzeriaID, sessionID string) error {
	m.cleared = true
	delete(m.lines, m.key(pizzeriaID, sessionID))
	return nil
}

func line(productID, size string) domain.CartLine {
	return domain.CartLine{ProductID: productID, SizeName: size, Quantity: 1}
}

func TestAddValidation(t *testing.T) {
	svc := New(newMemCache())
	if _, err := svc.Add(context.Background(), "pz", "s1", domain.CartLine{SizeName: "Media", Quantity: 1}); err == nil {
		t.Fatal("expected error for missing productId")
	}
	if _, err := svc.Add(context.Background(), "pz", "s1", domain.CartLine{ProductID: "p1", Quantity: 1}); err == nil {
		t.Fatal("expected error for missing sizeName")
	}
}

func TestAddMergesIdenticalSelection(t *testing.T) {
	svc := New(newMemCache())
	ctx := context.Background()

	if _, err := svc.Add(ctx, "pz", "s1", line("p1", "Media")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines, err := svc.Add(ctx, "pz", "s1", line("p1", "Media"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("expected one merged line with qty 2, got %+v", lines)
	}
}

func TestAddKeepsDistinctSelections(t *testing.T) {
	svc := New(newMemCache())
	ctx := context.Background()

	svc.Add(ctx, "pz", "s1", line("p1", "Media"))
	withObs := line("p1", "Media")
	withObs.Observation = "sem cebola"
	lines, err := svc.Add(ctx, "pz", "s1", withObs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("different observation must not merge, got %+v", lines)
	}
}

func TestUpdateQuantityFloorsAtOne(t *testing.T) {
	svc := New(newMemCache())
	ctx := context.Background()
	svc.Add(ctx, "pz", "s1", line("p1", "Media"))

	lines, err := svc.UpdateQuantity(ctx, "pz", "s1", 0, -5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines[0].Quantity != 1 {
		t.Fatalf("quantity must floor at 1, got %d", lines[0].Quantity)
	}
}

func TestUpdateQuantityOutOfRange(t *testing.T) {
	svc := New(newMemCache())
	if _, err := svc.UpdateQuantity(context.Background(), "pz", "s1", 3, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	svc := New(newMemCache())
	ctx := context.Background()
	svc.Add(ctx, "pz", "s1", line("p1", "Media"))
	svc.Add(ctx, "pz", "s1", line("p2", "Grande"))

	lines, err := svc.Remove(ctx, "pz", "s1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0].ProductID != "p2" {
		t.Fatalf("unexpected lines after remove: %+v", lines)
	}
}

func TestClear(t *testing.T) {
	cache := newMemCache()
	svc := New(cache)
	ctx := context.Background()
	svc.Add(ctx, "pz", "s1", line("p1", "Media"))

	if err := svc.Clear(ctx, "pz", "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cache.cleared {
		t.Fatal("expected cache clear")
	}
}

func TestCartsAreTenantScoped(t *testing.T) {
	svc := New(newMemCache())
	ctx := context.Background()
	svc.Add(ctx, "pz1", "s1", line("p1", "Media"))

	lines, err := svc.Get(ctx, "pz2", "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("cart must be scoped by tenant, got %+v", lines)
	}
}
