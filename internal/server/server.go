package server

import (
	"net/http"

	"sales-service/internal/handler"
	mid "sales-service/internal/middleware"
	"sales-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// New builds the Echo application: middleware stack plus the full API
// surface. Both deployment shapes (the long-running process and the
// per-request function adapter) share this one construction, so the
// routes are defined exactly once.
func New(db *gorm.DB) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(mid.RequestIDMiddleware)
	e.Use(logger.Middleware(logger.GetLogger()))
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h := handler.New(db)

	api := e.Group("/api")
	api.GET("/test", h.Test)
	api.GET("/total-sales", h.TotalSales)
	api.POST("/products", h.CreateProduct)
	api.POST("/customers", h.CreateCustomer)
	api.POST("/orders", h.CreateOrder)
	api.POST("/order-items", h.CreateOrderItem)
	api.GET("/debug/products", h.DebugProducts)
	api.GET("/debug/customers", h.DebugCustomers)
	api.DELETE("/products/:id", h.DeleteProduct)
	api.DELETE("/customers/:id", h.DeleteCustomer)

	return e
}
