package httpserver

import (
	"errors"
	"log"
	"net/http"

	"pizzaria-backend/internal/domain"
	"pizzaria-backend/internal/printer"

	"github.com/gin-gonic/gin"
)

type handlers struct {
	deps   Deps
	logger *log.Logger
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// respondError maps domain errors onto HTTP statuses and messages the
// storefront can show as-is. Stale-catalog problems ask the customer to
// refresh; workflow misuse tells the operator the action is not allowed.
func (h *handlers) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "não encontrado"})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "carrinho vazio"})
	case errors.Is(err, domain.ErrInvalidQuantity):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "quantidade inválida"})
	case errors.Is(err, domain.ErrUnknownProductOrSize):
		c.JSON(http.StatusConflict, gin.H{"error": "cardápio desatualizado, atualize a página e tente novamente"})
	case errors.Is(err, domain.ErrUnknownDeliveryZone):
		c.JSON(http.StatusConflict, gin.H{"error": "zona de entrega indisponível, atualize a página e tente novamente"})
	case errors.Is(err, domain.ErrStoreClosed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "estamos fechados no momento"})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "esta ação não é permitida agora"})
	case errors.Is(err, domain.ErrMissingCancellationReason):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "informe o motivo do cancelamento"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "o pedido mudou de status, recarregue e tente novamente"})
	case errors.Is(err, printer.ErrWriteFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "falha ao imprimir, tente novamente"})
	default:
		h.logger.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro interno"})
	}
}
