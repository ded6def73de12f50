package sales

import (
	"fmt"

	"sales-service/internal/model"

	"gorm.io/gorm"
)

// TotalRevenue computes total realized revenue: the sum of
// quantity * price_per_unit over line items whose parent order is
// completed. Cancelled orders contribute nothing. COALESCE keeps the
// result a numeric zero when no completed line items exist, since SUM
// over an empty set yields NULL.
func TotalRevenue(db *gorm.DB) (float64, error) {
	var total float64
	err := db.Model(&model.OrderItem{}).
		Select("COALESCE(SUM(order_items.quantity * order_items.price_per_unit), 0)").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status = ?", model.OrderStatusCompleted).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("total revenue query: %w", err)
	}
	return total, nil
}
