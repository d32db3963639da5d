package models

import "github.com/shopspring/decimal"

// Entity is anything kept in a keyed collection: it has an id and belongs
// to a named kind, which is used in user-facing messages.
type Entity interface {
	EntityID() int64
	Kind() string
}

// Product represents an item in the catalogue
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

func (p Product) EntityID() int64 { return p.ID }

func (Product) Kind() string { return "Product" }

// ProductUpdate carries the fields of a partial product update.
// A nil field is left unchanged.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
}

// Apply copies the supplied fields onto p.
func (u ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
}
