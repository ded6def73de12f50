package handler

import (
	"errors"
	"net/http"
	"time"

	"sales-service/internal/model"
	"sales-service/pkg/logger"
	"sales-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductRequest defines the structure for product creation requests
type ProductRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Cost     float64 `json:"cost"`
}

// CreateProduct handles creating a new product
func (h *Handler) CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.Name == "" || req.Category == "" {
		log.Warn("Missing required product fields",
			zap.String("name", req.Name),
			zap.String("category", req.Category))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "name and category are required",
		})
	}

	product := model.Product{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Cost:     req.Cost,
	}

	defer prometheus.TrackDBOperation("create")(time.Now())
	if result := h.db.Create(&product); result.Error != nil {
		log.Error("Failed to create product",
			zap.String("name", req.Name),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create product: " + result.Error.Error(),
		})
	}

	prometheus.RecordEntityOperation("product", "create")
	log.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.String("category", product.Category))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Product created successfully",
		"id":      product.ID,
	})
}

// DebugProducts returns the ten most recently created products, newest first
func (h *Handler) DebugProducts(c echo.Context) error {
	log := logger.FromContext(c)

	var products []model.Product
	if result := h.db.Order("id DESC").Limit(10).Find(&products); result.Error != nil {
		log.Error("Failed to list products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to fetch products: " + result.Error.Error(),
		})
	}

	return c.JSON(http.StatusOK, products)
}

// DeleteProduct handles deleting a product by ID. The delete is
// rejected with a 400 when order items still reference the product.
func (h *Handler) DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := h.db.Delete(&model.Product{}, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			log.Warn("Product delete blocked by existing order items",
				zap.String("product_id", id))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Cannot delete product - it is referenced in existing orders. Delete order items first.",
			})
		}
		log.Error("Failed to delete product",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete product: " + result.Error.Error(),
		})
	}

	if result.RowsAffected == 0 {
		log.Warn("Product not found for deletion", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	prometheus.RecordEntityOperation("product", "delete")
	log.Info("Product deleted", zap.String("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product deleted successfully",
	})
}
