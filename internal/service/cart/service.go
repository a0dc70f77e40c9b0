package cart

import (
	"context"
	"errors"
	"strings"

	"pizzaria-backend/internal/domain"
)

// Service maintains the session cart. The cart is a convenience cache for
// the storefront; checkout re-prices everything, so nothing here is
// authoritative.
type Service struct {
	cache cacheRepo
}

type cacheRepo interface {
	Get(ctx context.Context, pizzeriaID, sessionID string) ([]domain.CartLine, error)
	Set(ctx context.Context, pizzeriaID, sessionID string, lines []domain.CartLine) error
	Clear(ctx context.Context, pizzeriaID, sessionID string) error
}

func New(cache cacheRepo) *Service {
	return &Service{cache: cache}
}

func (s *Service) Get(ctx context.Context, pizzeriaID, sessionID string) ([]domain.CartLine, error) {
	return s.cache.Get(ctx, pizzeriaID, sessionID)
}

// Add appends a line, merging it into an existing line when the selection
// is identical.
func (s *Service) Add(ctx context.Context, pizzeriaID, sessionID string, line domain.CartLine) ([]domain.CartLine, error) {
	if strings.TrimSpace(line.ProductID) == "" {
		return nil, errors.New("productId required")
	}
	if strings.TrimSpace(line.SizeName) == "" {
		return nil, errors.New("sizeName required")
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	lines, err := s.cache.Get(ctx, pizzeriaID, sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range lines {
		if lines[i].SameSelection(line) {
			lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, line)
	}

	if err := s.cache.Set(ctx, pizzeriaID, sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateQuantity adjusts the quantity of the line at index by delta,
// flooring at 1, matching the storefront's +/- controls.
func (s *Service) UpdateQuantity(ctx context.Context, pizzeriaID, sessionID string, index, delta int) ([]domain.CartLine, error) {
	lines, err := s.cache.Get(ctx, pizzeriaID, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(lines) {
		return nil, domain.ErrNotFound
	}

	lines[index].Quantity += delta
	if lines[index].Quantity < 1 {
		lines[index].Quantity = 1
	}

	if err := s.cache.Set(ctx, pizzeriaID, sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Remove drops the line at index.
func (s *Service) Remove(ctx context.Context, pizzeriaID, sessionID string, index int) ([]domain.CartLine, error) {
	lines, err := s.cache.Get(ctx, pizzeriaID, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(lines) {
		return nil, domain.ErrNotFound
	}

	lines = append(lines[:index], lines[index+1:]...)
	if err := s.cache.Set(ctx, pizzeriaID, sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *Service) Clear(ctx context.Context, pizzeriaID, sessionID string) error {
	return s.cache.Clear(ctx, pizzeriaID, sessionID)
}
