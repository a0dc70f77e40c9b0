package httpserver

import (
	"context"
	"log"
	"net/http"
	"strings"

	"pizzaria-backend/internal/domain"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the services and repositories the handlers need.
type Deps struct {
	PizzeriaRepo pizzeriaRepo
	CategoryRepo categoryRepo
	ProductRepo  productRepo
	ZoneRepo     zoneRepo
	HoursRepo    hoursRepo
	CartSvc      cartService
	OrderSvc     orderService
}

type ctxKey string

const pizzeriaCtxKey ctxKey = "pizzeria"

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}

	store := router.Group("/pizzerias/:slug")
	store.Use(pizzeriaMiddleware(deps.PizzeriaRepo))
	{
		store.GET("/menu", h.getMenu)
		store.GET("/zones", h.listZones)

		store.GET("/cart", h.getCart)
		store.POST("/cart/items", h.addCartItem)
		store.PATCH("/cart/items/:index", h.updateCartItem)
		store.DELETE("/cart/items/:index", h.removeCartItem)
		store.DELETE("/cart", h.clearCart)

		store.POST("/orders", h.checkout)
		store.GET("/orders/:id", h.trackOrder)
	}

	admin := router.Group("/admin/pizzerias/:slug")
	admin.Use(pizzeriaMiddleware(deps.PizzeriaRepo))
	{
		admin.GET("/orders", h.listOrders)
		admin.POST("/orders/:id/advance", h.advanceOrder)
		admin.POST("/orders/:id/cancel", h.cancelOrder)
		admin.POST("/orders/:id/print", h.printOrder)
		admin.GET("/orders/:id/receipt", h.orderReceipt)

		admin.GET("/categories", h.listCategories)
		admin.POST("/categories", h.createCategory)
		admin.PUT("/categories/:id", h.updateCategory)
		admin.DELETE("/categories/:id", h.deleteCategory)

		admin.GET("/products", h.listProducts)
		admin.POST("/products", h.createProduct)
		admin.PUT("/products/:id", h.updateProduct)
		admin.DELETE("/products/:id", h.deleteProduct)

		admin.POST("/zones", h.createZone)
		admin.PUT("/zones/:id", h.updateZone)
		admin.DELETE("/zones/:id", h.deleteZone)

		admin.GET("/hours", h.getHours)
		admin.PUT("/hours", h.putHours)

		admin.PUT("/settings", h.updateSettings)
	}

	return router
}

// pizzeriaMiddleware resolves the tenant by slug and stores it in the
// request context.
func pizzeriaMiddleware(repo pizzeriaRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := strings.TrimSpace(c.Param("slug"))
		if slug == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "pizzeria slug required"})
			return
		}
		p, err := repo.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			if isNotFound(err) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "pizzeria not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), pizzeriaCtxKey, p))
		c.Next()
	}
}

func pizzeriaFrom(c *gin.Context) *domain.Pizzeria {
	p, _ := c.Request.Context().Value(pizzeriaCtxKey).(*domain.Pizzeria)
	return p
}
