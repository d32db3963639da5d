package repository

import (
	"context"

	"github.com/Lixing-Zhang/catalogue-api/internal/models"
	"github.com/shopspring/decimal"
)

// OrderRepository defines the interface for order data access
type OrderRepository = Repository[models.Order]

// SeedOrders returns the orders the service starts with. Their product
// snapshots are copies of the seed catalogue.
func SeedOrders() []models.Order {
	catalogue := SeedProducts()
	tv, headphones := catalogue[0], catalogue[1]

	return []models.Order{
		{
			ID:           1,
			Products:     []models.Product{tv},
			CustomerName: "Katerina",
			Address:      "Athens",
			TotalAmount:  tv.Price,
			OrderStatus:  models.OrderStatusReceived,
		},
		{
			ID:           2,
			Products:     []models.Product{tv, headphones},
			CustomerName: "Giorgos",
			Address:      "Athens",
			TotalAmount:  decimal.Sum(tv.Price, headphones.Price),
			OrderStatus:  models.OrderStatusReceived,
		},
	}
}

// NewInMemoryOrderRepository creates a new in-memory order repository with seed data
func NewInMemoryOrderRepository() *Store[models.Order] {
	return NewInMemoryOrderRepositoryWith(SeedOrders())
}

// NewInMemoryOrderRepositoryWith creates an in-memory order repository holding orders
func NewInMemoryOrderRepositoryWith(orders []models.Order) *Store[models.Order] {
	store := NewStore(models.Order.Clone)
	for _, o := range orders {
		_ = store.Add(context.Background(), o)
	}
	return store
}
