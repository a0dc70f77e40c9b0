package httpserver

import (
	"net/http"

	"pizzaria-backend/internal/domain"
	ordersvc "pizzaria-backend/internal/service/order"

	"github.com/gin-gonic/gin"
)

func (h *handlers) checkout(c *gin.Context) {
	p := pizzeriaFrom(c)
	var in ordersvc.CheckoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	order, err := h.deps.OrderSvc.Checkout(c.Request.Context(), p, in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// The session cart served its purpose; clearing it is best-effort.
	if sid := sessionID(c); sid != "" && h.deps.CartSvc != nil {
		if err := h.deps.CartSvc.Clear(c.Request.Context(), p.ID, sid); err != nil {
			h.logger.Printf("clear cart after checkout: %v", err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// trackOrder is the public read-only view behind the tracking link.
func (h *handlers) trackOrder(c *gin.Context) {
	p := pizzeriaFrom(c)
	order, err := h.deps.OrderSvc.Get(c.Request.Context(), p.ID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orderNumber":        order.OrderNumber,
		"status":             order.Status,
		"cancellationReason": order.CancellationReason,
		"totalCents":         order.TotalCents,
		"createdAt":          order.CreatedAt,
	})
}

func (h *handlers) listOrders(c *gin.Context) {
	p := pizzeriaFrom(c)
	orders, err := h.deps.OrderSvc.List(c.Request.Context(), p.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *handlers) advanceOrder(c *gin.Context) {
	p := pizzeriaFrom(c)
	order, err := h.deps.OrderSvc.Advance(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type cancelRequest struct {
	Reason       string `json:"reason"`
	CustomReason string `json:"customReason"`
}

func (h *handlers) cancelOrder(c *gin.Context) {
	p := pizzeriaFrom(c)
	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	order, err := h.deps.OrderSvc.Cancel(c.Request.Context(), p, c.Param("id"), req.Reason, req.CustomReason)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *handlers) printOrder(c *gin.Context) {
	p := pizzeriaFrom(c)
	if err := h.deps.OrderSvc.PrintReceipt(c.Request.Context(), p, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"printed": true})
}

// orderReceipt hands the raw ESC/POS stream to callers that bridge their
// own printer connection (e.g. a browser with Web Bluetooth).
func (h *handlers) orderReceipt(c *gin.Context) {
	p := pizzeriaFrom(c)
	data, err := h.deps.OrderSvc.EncodeReceipt(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", data)
}
