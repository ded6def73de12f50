package handler_test

import (
	"net/http"
	"testing"
	"time"

	"sales-service/internal/handler"
	"sales-service/internal/model"
	"sales-service/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCustomer(t *testing.T, db *gorm.DB) model.Customer {
	t.Helper()
	customer := model.Customer{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func TestCreateOrderWithCalendarDate(t *testing.T) {
	db := testutil.OpenDB(t)
	h := handler.New(db)
	customer := seedCustomer(t, db)

	rec, body := request(t, h.CreateOrder, http.MethodPost, "/api/orders",
		`{"customerId":1,"orderDate":"2026-08-15","status":"completed"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Order created successfully", body["message"])

	var order model.Order
	require.NoError(t, db.First(&order).Error)
	assert.Equal(t, customer.ID, order.CustomerID)
	assert.Equal(t, model.OrderStatusCompleted, order.Status)
	assert.Equal(t, 2026, order.OrderDate.Year())
}

func TestCreateOrderWithRFC3339Date(t *testing.T) {
	db := testutil.OpenDB(t)
	h := handler.New(db)
	seedCustomer(t, db)

	rec, _ := request(t, h.CreateOrder, http.MethodPost, "/api/orders",
		`{"customerId":1,"orderDate":"2026-08-15T10:30:00Z","status":"cancelled"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateOrderInvalidDate(t *testing.T) {
	db := testutil.OpenDB(t)
	h := handler.New(db)
	seedCustomer(t, db)

	rec, body := request(t, h.CreateOrder, http.MethodPost, "/api/orders",
		`{"customerId":1,"orderDate":"15/08/2026","status":"completed"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "orderDate")
}

func TestCreateOrderMissingFields(t *testing.T) {
	db := testutil.OpenDB(t)
	h := handler.New(db)

	rec, body := request(t, h.CreateOrder, http.MethodPost, "/api/orders",
		`{"orderDate":"2026-08-15"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "required")
}

func TestCreateOrderItem(t *testing.T) {
	db := testutil.OpenDB(t)
	h := handler.New(db)
	customer := seedCustomer(t, db)

	product := model.Product{Name: "Widget", Category: "Electronics", Price: 19.99, Cost: 7}
	require.NoError(t, db.Create(&product).Error)
	order := model.Order{CustomerID: customer.ID, OrderDate: time.Now(), Status: model.OrderStatusCompleted}
	require.NoError(t, db.Create(&order).Error)

	rec, body := request(t, h.CreateOrderItem, http.MethodPost, "/api/order-items",
		`{"orderId":1,"productId":1,"quantity":2,"pricePerUnit":19.99}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Order item created successfully", body["message"])

	var item model.OrderItem
	require.NoError(t, db.First(&item).Error)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 19.99, item.PricePerUnit)
}

func TestCreateOrderItemZeroQuantity(t *testing.T) {
	db := testutil.OpenDB(t)
	h := handler.New(db)

	rec, body := request(t, h.CreateOrderItem, http.MethodPost, "/api/order-items",
		`{"orderId":1,"productId":1,"quantity":0,"pricePerUnit":19.99}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "positive")
}
