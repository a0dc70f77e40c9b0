package httpserver

import (
	"net/http"
	"strings"

	"pizzaria-backend/internal/domain"
	categoryrepo "pizzaria-backend/internal/repository/category"
	productrepo "pizzaria-backend/internal/repository/product"
	zonerepo "pizzaria-backend/internal/repository/zone"

	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

func (h *handlers) listCategories(c *gin.Context) {
	p := pizzeriaFrom(c)
	categories, err := h.deps.CategoryRepo.ListByPizzeria(c.Request.Context(), p.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *handlers) createCategory(c *gin.Context) {
	p := pizzeriaFrom(c)
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	cat, err := h.deps.CategoryRepo.Create(c.Request.Context(), categoryrepo.CreateInput{
		PizzeriaID: p.ID,
		Name:       req.Name,
		SortOrder:  req.SortOrder,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": cat})
}

func (h *handlers) updateCategory(c *gin.Context) {
	p := pizzeriaFrom(c)
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	cat, err := h.deps.CategoryRepo.Update(c.Request.Context(), p.ID, c.Param("id"), req.Name, req.SortOrder)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": cat})
}

func (h *handlers) deleteCategory(c *gin.Context) {
	p := pizzeriaFrom(c)
	if err := h.deps.CategoryRepo.Delete(c.Request.Context(), p.ID, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type productRequest struct {
	CategoryID     string                `json:"categoryId" binding:"required"`
	Name           string                `json:"name" binding:"required"`
	Description    string                `json:"description"`
	ImageURL       string                `json:"imageUrl"`
	Available      bool                  `json:"available"`
	AllowsHalfHalf bool                  `json:"allowsHalfHalf"`
	Prices         []domain.ProductPrice `json:"prices" binding:"required"`
}

func (h *handlers) listProducts(c *gin.Context) {
	p := pizzeriaFrom(c)
	products, err := h.deps.ProductRepo.ListByPizzeria(c.Request.Context(), p.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *handlers) createProduct(c *gin.Context) {
	p := pizzeriaFrom(c)
	req, ok := bindProduct(c)
	if !ok {
		return
	}
	prod, err := h.deps.ProductRepo.Create(c.Request.Context(), productrepo.CreateInput{
		PizzeriaID:     p.ID,
		CategoryID:     req.CategoryID,
		Name:           req.Name,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		Available:      req.Available,
		AllowsHalfHalf: req.AllowsHalfHalf,
		Prices:         req.Prices,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": prod})
}

func (h *handlers) updateProduct(c *gin.Context) {
	p := pizzeriaFrom(c)
	req, ok := bindProduct(c)
	if !ok {
		return
	}
	prod, err := h.deps.ProductRepo.Update(c.Request.Context(), p.ID, c.Param("id"), productrepo.UpdateInput{
		CategoryID:     req.CategoryID,
		Name:           req.Name,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		Available:      req.Available,
		AllowsHalfHalf: req.AllowsHalfHalf,
		Prices:         req.Prices,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": prod})
}

func (h *handlers) deleteProduct(c *gin.Context) {
	p := pizzeriaFrom(c)
	if err := h.deps.ProductRepo.Delete(c.Request.Context(), p.ID, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindProduct(c *gin.Context) (*productRequest, bool) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return nil, false
	}
	if len(req.Prices) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one price required"})
		return nil, false
	}
	for _, pp := range req.Prices {
		if strings.TrimSpace(pp.SizeName) == "" || pp.PriceCents <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "prices need a size name and a positive value"})
			return nil, false
		}
	}
	return &req, true
}

type zoneRequest struct {
	NeighborhoodName string `json:"neighborhoodName" binding:"required"`
	PriceCents       int64  `json:"priceCents"`
	Active           bool   `json:"active"`
}

func (h *handlers) createZone(c *gin.Context) {
	p := pizzeriaFrom(c)
	var req zoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	z, err := h.deps.ZoneRepo.Create(c.Request.Context(), zonerepo.CreateInput{
		PizzeriaID:       p.ID,
		NeighborhoodName: req.NeighborhoodName,
		PriceCents:       req.PriceCents,
		Active:           req.Active,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"zone": z})
}

func (h *handlers) updateZone(c *gin.Context) {
	p := pizzeriaFrom(c)
	var req zoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	z, err := h.deps.ZoneRepo.Update(c.Request.Context(), p.ID, c.Param("id"), req.NeighborhoodName, req.PriceCents, req.Active)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"zone": z})
}

func (h *handlers) deleteZone(c *gin.Context) {
	p := pizzeriaFrom(c)
	if err := h.deps.ZoneRepo.Delete(c.Request.Context(), p.ID, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type hoursRequest struct {
	Schedule []domain.OperatingHours `json:"schedule"`
}

func (h *handlers) getHours(c *gin.Context) {
	p := pizzeriaFrom(c)
	schedule, err := h.deps.HoursRepo.ListByPizzeria(c.Request.Context(), p.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

func (h *handlers) putHours(c *gin.Context) {
	p := pizzeriaFrom(c)
	var req hoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	for _, entry := range req.Schedule {
		if entry.Weekday < 0 || entry.Weekday > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weekday must be 0..6"})
			return
		}
	}
	schedule, err := h.deps.HoursRepo.Replace(c.Request.Context(), p.ID, req.Schedule)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

type settingsRequest struct {
	Name           string `json:"name" binding:"required"`
	WhatsAppNumber string `json:"whatsappNumber"`
}

func (h *handlers) updateSettings(c *gin.Context) {
	p := pizzeriaFrom(c)
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	updated, err := h.deps.PizzeriaRepo.UpdateSettings(c.Request.Context(), p.ID, req.Name, req.WhatsAppNumber)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pizzeria": updated})
}
