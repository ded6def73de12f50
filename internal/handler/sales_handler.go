package handler

import (
	"net/http"
	"time"

	"sales-service/internal/sales"
	"sales-service/pkg/logger"
	"sales-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TotalSales returns total realized revenue across all completed orders
func (h *Handler) TotalSales(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("aggregate")(time.Now())
	total, err := sales.TotalRevenue(h.db)
	if err != nil {
		log.Error("Failed to compute total sales", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to fetch total sales: " + err.Error(),
		})
	}

	prometheus.RecordTotalSales(total)
	log.Info("Total sales computed", zap.Float64("total_sales", total))
	return c.JSON(http.StatusOK, echo.Map{
		"total_sales": total,
	})
}
