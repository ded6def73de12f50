package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Handler carries the pooled database handle into each route. The
// handle is constructed once at startup and injected; there is no
// process-wide singleton.
type Handler struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// Test is a simple liveness probe used by the frontend during setup
func (h *Handler) Test(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Hello from the TrendTrader backend API!",
	})
}

// parseOrderDate accepts either a full RFC3339 timestamp or a bare
// calendar date, which is what the order entry form submits.
func parseOrderDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
