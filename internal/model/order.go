package model

import "time"

// Order statuses. Only completed orders count toward revenue.
const (
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order belongs to exactly one Customer. The RESTRICT constraint makes
// deleting a referenced customer fail at the storage layer; the handler
// surfaces that as a 400, not a crash.
type Order struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	CustomerID uint      `json:"customer_id" gorm:"index;not null"`
	Customer   Customer  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	OrderDate  time.Time `json:"order_date" gorm:"not null"`
	Status     string    `json:"status" gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OrderItem is a line item. PricePerUnit snapshots the product price at
// order time, so historical revenue is stable under later price edits.
type OrderItem struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	OrderID      uint      `json:"order_id" gorm:"index;not null"`
	Order        Order     `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ProductID    uint      `json:"product_id" gorm:"index;not null"`
	Product      Product   `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Quantity     int       `json:"quantity" gorm:"not null"`
	PricePerUnit float64   `json:"price_per_unit" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}
