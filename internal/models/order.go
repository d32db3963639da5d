package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusReceived  OrderStatus = "received"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// ParseOrderStatus matches s case-insensitively against the known statuses
// and returns the normalized value.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch status := OrderStatus(strings.ToLower(s)); status {
	case OrderStatusReceived, OrderStatusShipped, OrderStatusDelivered:
		return status, true
	default:
		return "", false
	}
}

// Order represents a placed order. Products holds snapshots taken when the
// order was created; later catalogue edits do not reach them.
type Order struct {
	ID           int64           `json:"id"`
	Products     []Product       `json:"products"`
	CustomerName string          `json:"customer_name"`
	Address      string          `json:"address"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	OrderStatus  OrderStatus     `json:"order_status"`
}

func (o Order) EntityID() int64 { return o.ID }

func (Order) Kind() string { return "Order" }

// Clone returns a copy of o that shares no product storage with it.
func (o Order) Clone() Order {
	products := make([]Product, len(o.Products))
	copy(products, o.Products)
	o.Products = products
	return o
}

// OrderRequest holds the caller-supplied fields of a new order
type OrderRequest struct {
	CustomerName string
	Address      string
	TotalAmount  decimal.Decimal
	OrderStatus  string
	ProductIDs   []int64
}

// OrderUpdate carries the fields of a partial order update.
// A nil field is left unchanged.
type OrderUpdate struct {
	CustomerName *string
	Address      *string
	TotalAmount  *decimal.Decimal
	OrderStatus  *string
}
