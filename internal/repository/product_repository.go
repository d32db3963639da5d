package repository

import (
	"context"

	"github.com/Lixing-Zhang/catalogue-api/internal/models"
	"github.com/shopspring/decimal"
)

// ProductRepository defines the interface for product data access
type ProductRepository = Repository[models.Product]

// SeedProducts returns the catalogue the service starts with
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "TV", Description: "New Generation Television", Price: decimal.RequireFromString("599.99")},
		{ID: 2, Name: "headphones", Description: "New Generation headphones", Price: decimal.RequireFromString("99.99")},
		{ID: 3, Name: "laptop", Description: "New Generation laptop", Price: decimal.RequireFromString("1199.99")},
	}
}

// NewInMemoryProductRepository creates a new in-memory product repository with seed data
func NewInMemoryProductRepository() *Store[models.Product] {
	return NewInMemoryProductRepositoryWith(SeedProducts())
}

// NewInMemoryProductRepositoryWith creates an in-memory product repository holding products
func NewInMemoryProductRepositoryWith(products []models.Product) *Store[models.Product] {
	store := NewStore[models.Product](nil)
	for _, p := range products {
		// Seed ids are unique, Add cannot fail here.
		_ = store.Add(context.Background(), p)
	}
	return store
}
