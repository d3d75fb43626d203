package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/acme/dashboard-gateway/internal/interfaces/http/handler"
	"github.com/acme/dashboard-gateway/internal/interfaces/http/middleware"
)

// Handlers bundles every handler the router mounts
type Handlers struct {
	Dashboard *handler.DashboardHandler
	Invoice   *handler.InvoiceHandler
	Customer  *handler.CustomerHandler
	Auth      *handler.AuthHandler
}

// Setup builds the gin engine with middleware and all gateway routes
func Setup(logger *zap.Logger, h Handlers) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logging(logger),
		middleware.Recovery(logger),
	)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	api := engine.Group("/api/v1")

	dashboard := api.Group("/dashboard")
	dashboard.GET("/latest-invoices", h.Dashboard.LatestInvoices)
	dashboard.GET("/cards", h.Dashboard.Cards)
	dashboard.GET("/revenues", h.Dashboard.Revenues)

	invoices := api.Group("/invoices")
	invoices.GET("", h.Invoice.List)
	invoices.GET("/pages", h.Invoice.Pages)
	invoices.GET("/:id", h.Invoice.Get)
	invoices.POST("", h.Invoice.Create)
	invoices.PUT("/:id", h.Invoice.Update)
	invoices.DELETE("/:id", h.Invoice.Delete)

	customers := api.Group("/customers")
	customers.GET("", h.Customer.List)
	customers.GET("/table", h.Customer.Table)

	api.POST("/auth/login", h.Auth.Login)

	return engine
}
