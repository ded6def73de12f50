package seeder

import (
	"fmt"
	"time"

	"sales-service/internal/model"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dataset sizes produced by a run.
const (
	NumProducts  = 20
	NumCustomers = 50
	NumOrders    = 100
)

// statusPool gives the 3:1 completed/cancelled weighting via a uniform pick.
var statusPool = []string{
	model.OrderStatusCompleted,
	model.OrderStatusCompleted,
	model.OrderStatusCompleted,
	model.OrderStatusCancelled,
}

// Seeder replaces the entire dataset with synthetic data. It is
// destructive and must only be invoked from the offline maintenance
// command, never from a request handler.
type Seeder struct {
	db    *gorm.DB
	log   *zap.Logger
	faker *gofakeit.Faker
}

func New(db *gorm.DB, log *zap.Logger) *Seeder {
	return &Seeder{
		db:    db,
		log:   log,
		faker: gofakeit.New(0),
	}
}

// Run clears all four tables and inserts a fresh dataset. The run is
// not transactional: a failure aborts immediately and leaves whatever
// partial state was reached. Re-running restores a clean slate because
// the clear step comes first.
func (s *Seeder) Run() error {
	if err := s.clear(); err != nil {
		return err
	}

	products, err := s.seedProducts()
	if err != nil {
		return err
	}

	customers, err := s.seedCustomers()
	if err != nil {
		return err
	}

	if err := s.seedOrders(products, customers); err != nil {
		return err
	}

	s.log.Info("Database seeded",
		zap.Int("products", len(products)),
		zap.Int("customers", len(customers)),
		zap.Int("orders", NumOrders))
	return nil
}

// clear deletes all rows in dependency order so no foreign-key
// constraint fires: line items first, then orders, then the
// independent tables.
func (s *Seeder) clear() error {
	for _, table := range []string{"order_items", "orders", "products", "customers"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	s.log.Info("Cleared existing data")
	return nil
}

func (s *Seeder) seedProducts() ([]model.Product, error) {
	products := make([]model.Product, 0, NumProducts)
	for i := 0; i < NumProducts; i++ {
		products = append(products, model.Product{
			Name:     s.faker.ProductName(),
			Category: model.Categories[s.faker.Number(0, len(model.Categories)-1)],
			Price:    s.faker.Price(10, 200),
			Cost:     s.faker.Price(5, 100), // may exceed price; accepted as noisy data
		})
	}
	if err := s.db.Create(&products).Error; err != nil {
		return nil, fmt.Errorf("insert products: %w", err)
	}
	s.log.Info("Inserted products", zap.Int("count", len(products)))
	return products, nil
}

func (s *Seeder) seedCustomers() ([]model.Customer, error) {
	customers := make([]model.Customer, 0, NumCustomers)
	for i := 0; i < NumCustomers; i++ {
		customers = append(customers, model.Customer{
			FirstName: s.faker.FirstName(),
			LastName:  s.faker.LastName(),
			Email:     s.faker.Email(),
			City:      s.faker.City(),
			State:     s.faker.State(),
		})
	}
	if err := s.db.Create(&customers).Error; err != nil {
		return nil, fmt.Errorf("insert customers: %w", err)
	}
	s.log.Info("Inserted customers", zap.Int("count", len(customers)))
	return customers, nil
}

// seedOrders creates each order and then its line items, one order at a
// time, since the item inserts need the order's generated ID. Each order
// draws numItems products; a product already used in the same order is
// skipped silently, so an order may end up with fewer items than draws.
func (s *Seeder) seedOrders(products []model.Product, customers []model.Customer) error {
	now := time.Now()
	for i := 0; i < NumOrders; i++ {
		customer := customers[s.faker.Number(0, len(customers)-1)]
		order := model.Order{
			CustomerID: customer.ID,
			OrderDate:  s.faker.DateRange(now.AddDate(0, 0, -365), now),
			Status:     statusPool[s.faker.Number(0, len(statusPool)-1)],
		}
		if err := s.db.Create(&order).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		numItems := s.faker.Number(1, 4)
		used := make(map[uint]struct{}, numItems)
		for j := 0; j < numItems; j++ {
			product := products[s.faker.Number(0, len(products)-1)]
			if _, ok := used[product.ID]; ok {
				continue
			}
			used[product.ID] = struct{}{}

			item := model.OrderItem{
				OrderID:      order.ID,
				ProductID:    product.ID,
				Quantity:     s.faker.Number(1, 3),
				PricePerUnit: product.Price, // snapshot of the current price
			}
			if err := s.db.Create(&item).Error; err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
		}
	}
	s.log.Info("Inserted orders and items", zap.Int("orders", NumOrders))
	return nil
}
