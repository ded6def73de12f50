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

// CustomerRequest defines the structure for customer creation requests
type CustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	City      string `json:"city"`
	State     string `json:"state"`
}

// CreateCustomer handles creating a new customer
func (h *Handler) CreateCustomer(c echo.Context) error {
	log := logger.FromContext(c)

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		log.Warn("Missing required customer fields")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "firstName, lastName and email are required",
		})
	}

	customer := model.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		City:      req.City,
		State:     req.State,
	}

	defer prometheus.TrackDBOperation("create")(time.Now())
	if result := h.db.Create(&customer); result.Error != nil {
		log.Error("Failed to create customer",
			zap.String("email", req.Email),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create customer: " + result.Error.Error(),
		})
	}

	prometheus.RecordEntityOperation("customer", "create")
	log.Info("Customer created",
		zap.Uint("customer_id", customer.ID),
		zap.String("email", customer.Email))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Customer created successfully",
		"id":      customer.ID,
	})
}

// DebugCustomers returns the ten most recently created customers, newest first
func (h *Handler) DebugCustomers(c echo.Context) error {
	log := logger.FromContext(c)

	var customers []model.Customer
	if result := h.db.Order("id DESC").Limit(10).Find(&customers); result.Error != nil {
		log.Error("Failed to list customers", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to fetch customers: " + result.Error.Error(),
		})
	}

	return c.JSON(http.StatusOK, customers)
}

// DeleteCustomer handles deleting a customer by ID. The delete is
// rejected with a 400 when orders still reference the customer.
func (h *Handler) DeleteCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := h.db.Delete(&model.Customer{}, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			log.Warn("Customer delete blocked by existing orders",
				zap.String("customer_id", id))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Cannot delete customer - they have existing orders. Delete orders first.",
			})
		}
		log.Error("Failed to delete customer",
			zap.String("customer_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete customer: " + result.Error.Error(),
		})
	}

	if result.RowsAffected == 0 {
		log.Warn("Customer not found for deletion", zap.String("customer_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Customer not found",
		})
	}

	prometheus.RecordEntityOperation("customer", "delete")
	log.Info("Customer deleted", zap.String("customer_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Customer deleted successfully",
	})
}
