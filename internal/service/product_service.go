package service

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/catalogue-api/internal/models"
	"github.com/Lixing-Zhang/catalogue-api/internal/repository"
	"github.com/shopspring/decimal"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns the catalogue, failing with NotFound when it is empty
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkProductsAvailable(products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	product, err := checkItemExists(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct adds a product to the catalogue
func (s *ProductService) CreateProduct(ctx context.Context, id int64, name, description string, price decimal.Decimal) (*models.Product, error) {
	if err := usableID(ctx, s.repo, id); err != nil {
		return nil, err
	}
	if err := checkProductPrice(price); err != nil {
		return nil, err
	}

	product := models.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
	}
	if err := s.repo.Add(ctx, product); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, idTaken[models.Product](id)
		}
		return nil, err
	}
	return &product, nil
}

// UpdateProduct applies the supplied fields of upd to an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, upd models.ProductUpdate) (*models.Product, error) {
	if _, err := checkItemExists(ctx, s.repo, id); err != nil {
		return nil, err
	}
	if upd.Price != nil {
		if err := checkProductPrice(*upd.Price); err != nil {
			return nil, err
		}
	}

	product, err := s.repo.Update(ctx, id, func(p *models.Product) error {
		upd.Apply(p)
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, itemMissing[models.Product](id)
		}
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product and returns what is left of the catalogue
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) ([]models.Product, error) {
	if _, err := checkItemExists(ctx, s.repo, id); err != nil {
		return nil, err
	}
	if err := s.repo.Remove(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, itemMissing[models.Product](id)
		}
		return nil, err
	}
	return s.repo.List(ctx)
}
