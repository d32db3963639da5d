package service

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/catalogue-api/internal/models"
	"github.com/Lixing-Zhang/catalogue-api/internal/repository"
	"github.com/shopspring/decimal"
)

// OrderService handles order business logic
type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

// NewOrderService creates a new order service
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
	}
}

// CreateOrder places a new order. Every referenced product must exist, the
// status must be a known one and the caller's total must equal the sum of
// the referenced prices.
func (s *OrderService) CreateOrder(ctx context.Context, id int64, req models.OrderRequest) (*models.Order, error) {
	if err := usableID(ctx, s.orders, id); err != nil {
		return nil, err
	}

	orderedProducts := make([]models.Product, 0, len(req.ProductIDs))
	realAmount := decimal.Zero
	for _, productID := range req.ProductIDs {
		product, err := checkItemExists(ctx, s.products, productID)
		if err != nil {
			return nil, err
		}
		orderedProducts = append(orderedProducts, product)
		realAmount = realAmount.Add(product.Price)
	}

	status, err := checkOrderStatus(req.OrderStatus)
	if err != nil {
		return nil, err
	}

	total, err := checkOrderAmount(req.TotalAmount, realAmount)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		ID:           id,
		Products:     orderedProducts,
		CustomerName: req.CustomerName,
		Address:      req.Address,
		TotalAmount:  total,
		OrderStatus:  status,
	}
	if err := s.orders.Add(ctx, order); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, idTaken[models.Order](id)
		}
		return nil, err
	}
	return &order, nil
}

// UpdateOrder applies the supplied fields of upd to an existing order.
// An unknown status rejects the whole update. TotalAmount is stored as
// given and is not reconciled against the order's products.
func (s *OrderService) UpdateOrder(ctx context.Context, id int64, upd models.OrderUpdate) (*models.Order, error) {
	if _, err := checkItemExists(ctx, s.orders, id); err != nil {
		return nil, err
	}

	var status models.OrderStatus
	if upd.OrderStatus != nil {
		normalized, err := checkOrderStatus(*upd.OrderStatus)
		if err != nil {
			return nil, err
		}
		status = normalized
	}

	order, err := s.orders.Update(ctx, id, func(o *models.Order) error {
		if upd.CustomerName != nil {
			o.CustomerName = *upd.CustomerName
		}
		if upd.Address != nil {
			o.Address = *upd.Address
		}
		if upd.TotalAmount != nil {
			o.TotalAmount = *upd.TotalAmount
		}
		if upd.OrderStatus != nil {
			o.OrderStatus = status
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, itemMissing[models.Order](id)
		}
		return nil, err
	}
	return &order, nil
}

// GetOrderStatus returns the stored status of an order
func (s *OrderService) GetOrderStatus(ctx context.Context, id int64) (models.OrderStatus, error) {
	order, err := checkItemExists(ctx, s.orders, id)
	if err != nil {
		return "", err
	}
	return order.OrderStatus, nil
}
