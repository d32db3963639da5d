package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/catalogue-api/internal/models"
	"github.com/Lixing-Zhang/catalogue-api/internal/service"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct handles GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}

// CreateProduct handles POST /product/{id}
// Parameters: product_name, product_description, product_price.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	p, err := readParams(r)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	name, err := p.requiredString("product_name")
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	description, err := p.requiredString("product_description")
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	price, err := p.requiredDecimal("product_price")
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), id, name, description, price)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusCreated, product, h.logger)
	h.logger.Info("product created", "product_id", product.ID, "price", product.Price.String())
}

// UpdateProduct handles PUT /products/{id}
// Any of product_name, product_description and product_price may be supplied.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	upd, err := parseProductUpdate(r)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, upd)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}

// DeleteProduct handles DELETE /products/{id}
// The response holds the remaining catalogue.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	remaining, err := h.service.DeleteProduct(r.Context(), id)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, remaining, h.logger)
	h.logger.Info("product deleted", "product_id", id, "remaining", len(remaining))
}

func parseProductUpdate(r *http.Request) (models.ProductUpdate, error) {
	var upd models.ProductUpdate

	p, err := readParams(r)
	if err != nil {
		return upd, err
	}
	if upd.Name, err = p.optionalString("product_name"); err != nil {
		return upd, err
	}
	if upd.Description, err = p.optionalString("product_description"); err != nil {
		return upd, err
	}
	if upd.Price, err = p.optionalDecimal("product_price"); err != nil {
		return upd, err
	}
	return upd, nil
}
