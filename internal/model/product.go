package model

import "time"

// Categories is the fixed set of product categories. The seeder draws
// uniformly from it; the API accepts any non-empty category string.
var Categories = []string{"Electronics", "Clothing", "Home & Kitchen", "Books", "Beauty"}

// Product represents a catalog entry. Price and Cost are independent
// monetary values; cost exceeding price is allowed.
type Product struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Category  string    `json:"category" gorm:"type:varchar(100);not null"`
	Price     float64   `json:"price" gorm:"not null"`
	Cost      float64   `json:"cost" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
