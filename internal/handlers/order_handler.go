package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/catalogue-api/internal/models"
	"github.com/Lixing-Zhang/catalogue-api/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /orders/{id}
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, r, err, h.log)
		return
	}

	req, err := parseOrderRequest(r)
	if err != nil {
		writeFailure(w, r, err, h.log)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), id, req)
	if err != nil {
		writeFailure(w, r, err, h.log)
		return
	}

	WriteJSON(w, http.StatusCreated, order, h.log)
	h.log.Info("order created successfully", "order_id", order.ID, "products_count", len(order.Products))
}

// UpdateOrder handles PUT /orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, r, err, h.log)
		return
	}

	upd, err := parseOrderUpdate(r)
	if err != nil {
		writeFailure(w, r, err, h.log)
		return
	}

	order, err := h.orderService.UpdateOrder(r.Context(), id, upd)
	if err != nil {
		writeFailure(w, r, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
}

// GetOrderStatus handles GET /orders/{id}
// The body is the bare status string, e.g. "received".
func (h *OrderHandler) GetOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, r, err, h.log)
		return
	}

	status, err := h.orderService.GetOrderStatus(r.Context(), id)
	if err != nil {
		writeFailure(w, r, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, status, h.log)
}

func parseOrderRequest(r *http.Request) (models.OrderRequest, error) {
	var req models.OrderRequest

	p, err := readParams(r)
	if err != nil {
		return req, err
	}
	if req.CustomerName, err = p.requiredString("customer_name"); err != nil {
		return req, err
	}
	if req.Address, err = p.requiredString("address"); err != nil {
		return req, err
	}
	if req.TotalAmount, err = p.requiredDecimal("total_amount"); err != nil {
		return req, err
	}
	if req.OrderStatus, err = p.requiredString("order_status"); err != nil {
		return req, err
	}
	if req.ProductIDs, err = p.requiredIDs("product_ids"); err != nil {
		return req, err
	}
	return req, nil
}

func parseOrderUpdate(r *http.Request) (models.OrderUpdate, error) {
	var upd models.OrderUpdate

	p, err := readParams(r)
	if err != nil {
		return upd, err
	}
	if upd.CustomerName, err = p.optionalString("customer_name"); err != nil {
		return upd, err
	}
	if upd.Address, err = p.optionalString("address"); err != nil {
		return upd, err
	}
	if upd.TotalAmount, err = p.optionalDecimal("total_amount"); err != nil {
		return upd, err
	}
	if upd.OrderStatus, err = p.optionalString("order_status"); err != nil {
		return upd, err
	}
	return upd, nil
}
