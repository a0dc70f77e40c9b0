package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"pizzaria-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const sessionHeader = "X-Session-ID"

func sessionID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(sessionHeader))
}

func (h *handlers) requireSession(c *gin.Context) (string, bool) {
	sid := sessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": sessionHeader + " header required"})
		return "", false
	}
	return sid, true
}

func (h *handlers) getCart(c *gin.Context) {
	sid, ok := h.requireSession(c)
	if !ok {
		return
	}
	p := pizzeriaFrom(c)
	lines, err := h.deps.CartSvc.Get(c.Request.Context(), p.ID, sid)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lines": lines})
}

func (h *handlers) addCartItem(c *gin.Context) {
	sid, ok := h.requireSession(c)
	if !ok {
		return
	}
	var line domain.CartLine
	if err := c.ShouldBindJSON(&line); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	p := pizzeriaFrom(c)
	lines, err := h.deps.CartSvc.Add(c.Request.Context(), p.ID, sid, line)
	if err != nil {
		if isNotFound(err) {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lines": lines})
}

type cartQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func (h *handlers) updateCartItem(c *gin.Context) {
	sid, ok := h.requireSession(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}
	var req cartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	p := pizzeriaFrom(c)
	lines, err := h.deps.CartSvc.UpdateQuantity(c.Request.Context(), p.ID, sid, index, req.Delta)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lines": lines})
}

func (h *handlers) removeCartItem(c *gin.Context) {
	sid, ok := h.requireSession(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}
	p := pizzeriaFrom(c)
	lines, err := h.deps.CartSvc.Remove(c.Request.Context(), p.ID, sid, index)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lines": lines})
}

func (h *handlers) clearCart(c *gin.Context) {
	sid, ok := h.requireSession(c)
	if !ok {
		return
	}
	p := pizzeriaFrom(c)
	if err := h.deps.CartSvc.Clear(c.Request.Context(), p.ID, sid); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
