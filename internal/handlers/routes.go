package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the catalogue and order endpoints on r
func RegisterRoutes(r chi.Router, products *ProductHandler, orders *OrderHandler) {
	// Product endpoints
	r.Get("/products", products.ListProducts)
	r.Get("/products/{id}", products.GetProduct)
	r.Post("/product/{id}", products.CreateProduct)
	r.Put("/products/{id}", products.UpdateProduct)
	r.Delete("/products/{id}", products.DeleteProduct)

	// Order endpoints
	r.Post("/orders/{id}", orders.CreateOrder)
	r.Put("/orders/{id}", orders.UpdateOrder)
	r.Get("/orders/{id}", orders.GetOrderStatus)
}
