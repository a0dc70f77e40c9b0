package httpserver

import (
	"net/http"
	"time"

	"pizzaria-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type menuResponse struct {
	Pizzeria   *domain.Pizzeria        `json:"pizzeria"`
	Open       bool                    `json:"open"`
	Categories []menuCategory          `json:"categories"`
	Zones      []domain.DeliveryZone   `json:"zones"`
	Hours      []domain.OperatingHours `json:"hours"`
}

type menuCategory struct {
	domain.Category
	Products []domain.Product `json:"products"`
}

func (h *handlers) getMenu(c *gin.Context) {
	p := pizzeriaFrom(c)
	ctx := c.Request.Context()

	categories, err := h.deps.CategoryRepo.ListByPizzeria(ctx, p.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	products, err := h.deps.ProductRepo.ListByPizzeria(ctx, p.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	zones, err := h.deps.ZoneRepo.ListByPizzeria(ctx, p.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	hours, err := h.deps.HoursRepo.ListByPizzeria(ctx, p.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	byCategory := make(map[string][]domain.Product)
	for _, prod := range products {
		if !prod.Available {
			continue
		}
		byCategory[prod.CategoryID] = append(byCategory[prod.CategoryID], prod)
	}

	out := menuResponse{
		Pizzeria: p,
		Open:     len(hours) == 0 || domain.OpenAt(hours, time.Now()),
		Zones:    activeZones(zones),
		Hours:    hours,
	}
	for _, cat := range categories {
		out.Categories = append(out.Categories, menuCategory{
			Category: cat,
			Products: byCategory[cat.ID],
		})
	}

	c.JSON(http.StatusOK, out)
}

func (h *handlers) listZones(c *gin.Context) {
	p := pizzeriaFrom(c)
	zones, err := h.deps.ZoneRepo.ListByPizzeria(c.Request.Context(), p.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"zones": activeZones(zones)})
}

func activeZones(zones []domain.DeliveryZone) []domain.DeliveryZone {
	out := make([]domain.DeliveryZone, 0, len(zones))
	for _, z := range zones {
		if z.Active {
			out = append(out, z)
		}
	}
	return out
}
