package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"sales-service/internal/handler"
	"sales-service/internal/model"
	"sales-service/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	db := testutil.OpenDB(t)
	h := handler.New(db)

	rec, body := request(t, h.CreateProduct, http.MethodPost, "/api/products",
		`{"name":"Ergonomic Chair","category":"Home & Kitchen","price":129.99,"cost":60.50}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Product created successfully", body["message"])
	assert.NotZero(t, body["id"])

	var product model.Product
	require.NoError(t, db.First(&product).Error)
	assert.Equal(t, "Ergonomic Chair", product.Name)
	assert.Equal(t, 129.99, product.Price)
}

func TestCreateProductMissingName(t *testing.T) {
	db := testutil.OpenDB(t)
	h := handler.New(db)

	rec, body := request(t, h.CreateProduct, http.MethodPost, "/api/products",
		`{"category":"Books","price":10,"cost":5}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "required")

	var count int64
	require.NoError(t, db.Model(&model.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteProduct(t *testing.T) {
	db := testutil.OpenDB(t)
	h := handler.New(db)

	product := model.Product{Name: "Lamp", Category: "Home & Kitchen", Price: 25, Cost: 10}
	require.NoError(t, db.Create(&product).Error)

	rec, body := request(t, h.DeleteProduct, http.MethodDelete, "/api/products/1", "",
		map[string]string{"id": fmt.Sprint(product.ID)})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product deleted successfully", body["message"])

	var count int64
	require.NoError(t, db.Model(&model.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteProductNotFound(t *testing.T) {
	db := testutil.OpenDB(t)
	h := handler.New(db)

	rec, body := request(t, h.DeleteProduct, http.MethodDelete, "/api/products/999", "",
		map[string]string{"id": "999"})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", body["error"])
}

func TestDeleteProductReferencedByOrderItem(t *testing.T) {
	db := testutil.OpenDB(t)
	h := handler.New(db)

	product := model.Product{Name: "Lamp", Category: "Home & Kitchen", Price: 25, Cost: 10}
	require.NoError(t, db.Create(&product).Error)
	customer := model.Customer{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	require.NoError(t, db.Create(&customer).Error)
	order := model.Order{CustomerID: customer.ID, OrderDate: time.Now(), Status: model.OrderStatusCompleted}
	require.NoError(t, db.Create(&order).Error)
	item := model.OrderItem{OrderID: order.ID, ProductID: product.ID, Quantity: 1, PricePerUnit: 25}
	require.NoError(t, db.Create(&item).Error)

	rec, body := request(t, h.DeleteProduct, http.MethodDelete, "/api/products/1", "",
		map[string]string{"id": fmt.Sprint(product.ID)})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "referenced")

	// The product row must be left intact.
	var count int64
	require.NoError(t, db.Model(&model.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDebugProductsNewestFirstLimitTen(t *testing.T) {
	db := testutil.OpenDB(t)
	h := handler.New(db)

	for i := 1; i <= 12; i++ {
		p := model.Product{Name: fmt.Sprintf("Product %d", i), Category: "Books", Price: 10, Cost: 5}
		require.NoError(t, db.Create(&p).Error)
	}

	rec, _ := request(t, h.DebugProducts, http.MethodGet, "/api/debug/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 10)
	assert.Equal(t, "Product 12", products[0].Name)
	assert.Equal(t, "Product 3", products[9].Name)
}
