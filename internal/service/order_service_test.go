package service

import (
	"context"
	"testing"

	"github.com/Lixing-Zhang/catalogue-api/internal/models"
	"github.com/Lixing-Zhang/catalogue-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrderService() (*OrderService, *ProductService) {
	products := repository.NewInMemoryProductRepository()
	orders := repository.NewInMemoryOrderRepository()
	return NewOrderService(orders, products), NewProductService(products)
}

// storedOrder reads an order straight from the service's repository
func storedOrder(ctx context.Context, svc *OrderService, id int64) (models.Order, error) {
	return checkItemExists(ctx, svc.orders, id)
}

func TestOrderService_CreateOrder(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		req     models.OrderRequest
		wantErr error
		detail  string
	}{
		{
			name: "valid order with two products",
			id:   3,
			req: models.OrderRequest{
				CustomerName: "Nikos",
				Address:      "Patras",
				TotalAmount:  price("699.98"),
				OrderStatus:  "Received",
				ProductIDs:   []int64{1, 2},
			},
		},
		{
			name: "same product twice",
			id:   4,
			req: models.OrderRequest{
				TotalAmount: price("199.98"),
				OrderStatus: "SHIPPED",
				ProductIDs:  []int64{2, 2},
			},
		},
		{
			name: "no products",
			id:   5,
			req: models.OrderRequest{
				TotalAmount: price("0"),
				OrderStatus: "delivered",
			},
		},
		{
			name: "id already used",
			id:   1,
			req: models.OrderRequest{
				TotalAmount: price("599.99"),
				OrderStatus: "received",
				ProductIDs:  []int64{1},
			},
			wantErr: ErrConflict,
			detail:  "Order with id: 1 already exists",
		},
		{
			name: "unknown product",
			id:   3,
			req: models.OrderRequest{
				TotalAmount: price("599.99"),
				OrderStatus: "received",
				ProductIDs:  []int64{1, 77},
			},
			wantErr: ErrNotFound,
			detail:  "Product with id: 77 was not found in catalogue",
		},
		{
			name: "unknown status",
			id:   3,
			req: models.OrderRequest{
				TotalAmount: price("599.99"),
				OrderStatus: "lost",
				ProductIDs:  []int64{1},
			},
			wantErr: ErrInvalidArgument,
			detail:  "Order status can only be: 1) received, 2) shipped, 3) delivered",
		},
		{
			name: "total mismatch",
			id:   3,
			req: models.OrderRequest{
				TotalAmount: price("700"),
				OrderStatus: "received",
				ProductIDs:  []int64{1, 2},
			},
			wantErr: ErrInvalidArgument,
			detail:  "Calculated amount is: 699.98 and order amount is: 700",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, _ := newTestOrderService()

			order, err := svc.CreateOrder(ctx, tt.id, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.EqualError(t, err, tt.detail)

				if tt.wantErr != ErrConflict {
					_, err := storedOrder(ctx, svc, tt.id)
					assert.ErrorIs(t, err, ErrNotFound, "rejected order must not be stored")
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.id, order.ID)
			assert.Len(t, order.Products, len(tt.req.ProductIDs))
			assert.True(t, order.TotalAmount.Equal(tt.req.TotalAmount))

			_, ok := models.ParseOrderStatus(string(order.OrderStatus))
			assert.True(t, ok)

			stored, err := storedOrder(ctx, svc, tt.id)
			require.NoError(t, err)
			assert.Equal(t, order.CustomerName, stored.CustomerName)
			assert.Equal(t, order.OrderStatus, stored.OrderStatus)
		})
	}
}

func TestOrderService_CreateOrder_NormalizesStatus(t *testing.T) {
	svc, _ := newTestOrderService()

	order, err := svc.CreateOrder(context.Background(), 3, models.OrderRequest{
		TotalAmount: price("1199.99"),
		OrderStatus: "DeLiVeReD",
		ProductIDs:  []int64{3},
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, order.OrderStatus)
}

func TestOrderService_CreateOrder_SnapshotsProducts(t *testing.T) {
	ctx := context.Background()
	orders, products := newTestOrderService()

	_, err := orders.CreateOrder(ctx, 3, models.OrderRequest{
		TotalAmount: price("599.99"),
		OrderStatus: "received",
		ProductIDs:  []int64{1},
	})
	require.NoError(t, err)

	_, err = products.UpdateProduct(ctx, 1, models.ProductUpdate{
		Name:  ptr("Old TV"),
		Price: ptr(price("10")),
	})
	require.NoError(t, err)
	_, err = products.DeleteProduct(ctx, 1)
	require.NoError(t, err)

	order, err := storedOrder(ctx, orders, 3)
	require.NoError(t, err)
	require.Len(t, order.Products, 1)
	assert.Equal(t, "TV", order.Products[0].Name)
	assert.True(t, order.Products[0].Price.Equal(price("599.99")))
	assert.True(t, order.TotalAmount.Equal(price("599.99")))
}

func TestOrderService_UpdateOrder(t *testing.T) {
	t.Run("supplied fields are applied", func(t *testing.T) {
		svc, _ := newTestOrderService()

		order, err := svc.UpdateOrder(context.Background(), 1, models.OrderUpdate{
			CustomerName: ptr("Katerina P."),
			OrderStatus:  ptr("Shipped"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Katerina P.", order.CustomerName)
		assert.Equal(t, "Athens", order.Address)
		assert.Equal(t, models.OrderStatusShipped, order.OrderStatus)
	})

	t.Run("total is stored as given", func(t *testing.T) {
		svc, _ := newTestOrderService()

		order, err := svc.UpdateOrder(context.Background(), 2, models.OrderUpdate{TotalAmount: ptr(price("1"))})
		require.NoError(t, err)
		assert.True(t, order.TotalAmount.Equal(price("1")))
	})

	t.Run("invalid status rejects every field", func(t *testing.T) {
		ctx := context.Background()
		svc, _ := newTestOrderService()

		_, err := svc.UpdateOrder(ctx, 1, models.OrderUpdate{
			Address:     ptr("Thessaloniki"),
			OrderStatus: ptr("returned"),
		})
		require.ErrorIs(t, err, ErrInvalidArgument)

		order, err := storedOrder(ctx, svc, 1)
		require.NoError(t, err)
		assert.Equal(t, "Athens", order.Address)
		assert.Equal(t, models.OrderStatusReceived, order.OrderStatus)
	})

	t.Run("unknown order", func(t *testing.T) {
		svc, _ := newTestOrderService()

		_, err := svc.UpdateOrder(context.Background(), 9, models.OrderUpdate{Address: ptr("x")})
		require.ErrorIs(t, err, ErrNotFound)
		assert.EqualError(t, err, "Order with id: 9 was not found in catalogue")
	})
}

func TestOrderService_GetOrderStatus(t *testing.T) {
	svc, _ := newTestOrderService()

	status, err := svc.GetOrderStatus(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusReceived, status)

	_, err = svc.GetOrderStatus(context.Background(), 3)
	require.ErrorIs(t, err, ErrNotFound)
}
