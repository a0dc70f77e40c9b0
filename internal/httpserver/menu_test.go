package httpserver

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"pizzaria-backend/internal/domain"
	categoryrepo "pizzaria-backend/internal/repository/category"
	productrepo "pizzaria-backend/internal/repository/product"
	zonerepo "pizzaria-backend/internal/repository/zone"
)

type stubCategoryRepo struct {
	categories []domain.Category
	err        error
}

func (s *stubCategoryRepo) ListByPizzeria(_ context.Context, _ string) ([]domain.Category, error) {
	return s.categories, s.err
}

func (s *stubCategoryRepo) Create(_ context.Context, in categoryrepo.CreateInput) (*domain.Category, error) {
	return &domain.Category{ID: "c-new", Name: in.Name, SortOrder: in.SortOrder}, s.err
}

func (s *stubCategoryRepo) Update(_ context.Context, _, id, name string, sortOrder int) (*domain.Category, error) {
	return &domain.Category{ID: id, Name: name, SortOrder: sortOrder}, s.err
}

func (s *stubCategoryRepo) Delete(_ context.Context, _, _ string) error { return s.err }

type stubProductRepo struct {
	products []domain.Product
	err      error
}

func (s *stubProductRepo) ListByPizzeria(_ context.Context, _ string) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubProductRepo) Create(_ context.Context, in productrepo.CreateInput) (*domain.Product, error) {
	return &domain.Product{ID: "pz-new", Name: in.Name}, s.err
}

func (s *stubProductRepo) Update(_ context.Context, _, id string, in productrepo.UpdateInput) (*domain.Product, error) {
	return &domain.Product{ID: id, Name: in.Name}, s.err
}

func (s *stubProductRepo) Delete(_ context.Context, _, _ string) error { return s.err }

type stubZoneRepo struct {
	zones []domain.DeliveryZone
	err   error
}

func (s *stubZoneRepo) ListByPizzeria(_ context.Context, _ string) ([]domain.DeliveryZone, error) {
	return s.zones, s.err
}

func (s *stubZoneRepo) Create(_ context.Context, in zonerepo.CreateInput) (*domain.DeliveryZone, error) {
	return &domain.DeliveryZone{ID: "z-new", NeighborhoodName: in.NeighborhoodName}, s.err
}

func (s *stubZoneRepo) Update(_ context.Context, _, id, name string, priceCents int64, active bool) (*domain.DeliveryZone, error) {
	return &domain.DeliveryZone{ID: id, NeighborhoodName: name, PriceCents: priceCents, Active: active}, s.err
}

func (s *stubZoneRepo) Delete(_ context.Context, _, _ string) error { return s.err }

type stubHoursRepo struct {
	schedule []domain.OperatingHours
	err      error
}

func (s *stubHoursRepo) ListByPizzeria(_ context.Context, _ string) ([]domain.OperatingHours, error) {
	return s.schedule, s.err
}

func (s *stubHoursRepo) Replace(_ context.Context, _ string, schedule []domain.OperatingHours) ([]domain.OperatingHours, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.schedule = schedule
	return schedule, nil
}

func TestGetMenu_FiltersUnavailableAndInactive(t *testing.T) {
	deps := Deps{
		CategoryRepo: &stubCategoryRepo{categories: []domain.Category{
			{ID: "c1", Name: "Pizzas Salgadas"},
		}},
		ProductRepo: &stubProductRepo{products: []domain.Product{
			{ID: "pz1", CategoryID: "c1", Name: "Calabresa", Available: true},
			{ID: "pz2", CategoryID: "c1", Name: "Quatro Queijos", Available: false},
		}},
		ZoneRepo: &stubZoneRepo{zones: []domain.DeliveryZone{
			{ID: "z1", NeighborhoodName: "Centro", PriceCents: 500, Active: true},
			{ID: "z2", NeighborhoodName: "Distante", PriceCents: 1500, Active: false},
		}},
		HoursRepo: &stubHoursRepo{},
	}
	router := testRouter(t, deps)

	rec := doJSON(router, http.MethodGet, "/pizzerias/ze/menu", nil, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := rec.Body.String()
	if !strings.Contains(got, "Calabresa") {
		t.Fatalf("expected available product in menu: %s", got)
	}
	if strings.Contains(got, "Quatro Queijos") {
		t.Fatalf("unavailable product must not appear in menu: %s", got)
	}
	if !strings.Contains(got, "Centro") || strings.Contains(got, "Distante") {
		t.Fatalf("only active zones belong in the menu: %s", got)
	}
	// No configured schedule means always open.
	if !strings.Contains(got, `"open":true`) {
		t.Fatalf("expected open flag set: %s", got)
	}
}

func TestPutHours_RejectsBadWeekday(t *testing.T) {
	deps := Deps{HoursRepo: &stubHoursRepo{}}
	router := testRouter(t, deps)

	body := map[string]any{"schedule": []domain.OperatingHours{{Weekday: 9, OpenTime: "18:00", CloseTime: "23:00"}}}
	rec := doJSON(router, http.MethodPut, "/admin/pizzerias/ze/hours", body, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestCreateProduct_RequiresPrices(t *testing.T) {
	deps := Deps{ProductRepo: &stubProductRepo{}}
	router := testRouter(t, deps)

	body := map[string]any{"categoryId": "c1", "name": "Calabresa", "prices": []domain.ProductPrice{}}
	rec := doJSON(router, http.MethodPost, "/admin/pizzerias/ze/products", body, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
