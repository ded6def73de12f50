package handler

import (
	"net/http"
	"time"

	"sales-service/internal/model"
	"sales-service/pkg/logger"
	"sales-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OrderRequest defines the structure for order creation requests
type OrderRequest struct {
	CustomerID uint   `json:"customerId"`
	OrderDate  string `json:"orderDate"`
	Status     string `json:"status"`
}

// OrderItemRequest defines the structure for order item creation requests
type OrderItemRequest struct {
	OrderID      uint    `json:"orderId"`
	ProductID    uint    `json:"productId"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
}

// CreateOrder handles creating a new order
func (h *Handler) CreateOrder(c echo.Context) error {
	log := logger.FromContext(c)

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.CustomerID == 0 || req.OrderDate == "" || req.Status == "" {
		log.Warn("Missing required order fields")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "customerId, orderDate and status are required",
		})
	}

	orderDate, err := parseOrderDate(req.OrderDate)
	if err != nil {
		log.Warn("Invalid order date", zap.String("order_date", req.OrderDate))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "orderDate must be RFC3339 or YYYY-MM-DD",
		})
	}

	order := model.Order{
		CustomerID: req.CustomerID,
		OrderDate:  orderDate,
		Status:     req.Status,
	}

	defer prometheus.TrackDBOperation("create")(time.Now())
	if result := h.db.Create(&order); result.Error != nil {
		log.Error("Failed to create order",
			zap.Uint("customer_id", req.CustomerID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create order: " + result.Error.Error(),
		})
	}

	prometheus.RecordEntityOperation("order", "create")
	log.Info("Order created",
		zap.Uint("order_id", order.ID),
		zap.Uint("customer_id", order.CustomerID),
		zap.String("status", order.Status))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Order created successfully",
		"id":      order.ID,
	})
}

// CreateOrderItem handles creating a new order line item
func (h *Handler) CreateOrderItem(c echo.Context) error {
	log := logger.FromContext(c)

	var req OrderItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.OrderID == 0 || req.ProductID == 0 {
		log.Warn("Missing required order item fields")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "orderId and productId are required",
		})
	}
	if req.Quantity < 1 {
		log.Warn("Invalid order item quantity", zap.Int("quantity", req.Quantity))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "quantity must be a positive integer",
		})
	}

	item := model.OrderItem{
		OrderID:      req.OrderID,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
	}

	defer prometheus.TrackDBOperation("create")(time.Now())
	if result := h.db.Create(&item); result.Error != nil {
		log.Error("Failed to create order item",
			zap.Uint("order_id", req.OrderID),
			zap.Uint("product_id", req.ProductID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create order item: " + result.Error.Error(),
		})
	}

	prometheus.RecordEntityOperation("order_item", "create")
	log.Info("Order item created",
		zap.Uint("order_item_id", item.ID),
		zap.Uint("order_id", item.OrderID),
		zap.Uint("product_id", item.ProductID))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Order item created successfully",
		"id":      item.ID,
	})
}
