package service

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/catalogue-api/internal/models"
	"github.com/Lixing-Zhang/catalogue-api/internal/repository"
	"github.com/shopspring/decimal"
)

// MinProductPrice is the lowest price a catalogue product may carry
var MinProductPrice = decimal.RequireFromString("0.1")

// checkItemExists returns the item with the given id, or a NotFound error
// naming the item's kind.
func checkItemExists[T models.Entity](ctx context.Context, repo repository.Repository[T], id int64) (T, error) {
	item, err := repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		var zero T
		return zero, itemMissing[T](id)
	}
	return item, err
}

func itemMissing[T models.Entity](id int64) error {
	var zero T
	return notFound("%s with id: %d was not found in catalogue", zero.Kind(), id)
}

// usableID fails with Conflict if id is already taken in repo
func usableID[T models.Entity](ctx context.Context, repo repository.Repository[T], id int64) error {
	_, err := repo.Get(ctx, id)
	switch {
	case err == nil:
		return idTaken[T](id)
	case errors.Is(err, repository.ErrNotFound):
		return nil
	default:
		return err
	}
}

func idTaken[T models.Entity](id int64) error {
	var zero T
	return conflict("%s with id: %d already exists", zero.Kind(), id)
}

func checkProductsAvailable(products []models.Product) error {
	if len(products) < 1 {
		return notFound("There are no products in catalogue")
	}
	return nil
}

func checkProductPrice(price decimal.Decimal) error {
	if price.LessThan(MinProductPrice) {
		return invalidArgument("Product prices must be above %s", MinProductPrice)
	}
	return nil
}

// checkOrderStatus returns the normalized form of status
func checkOrderStatus(status string) (models.OrderStatus, error) {
	normalized, ok := models.ParseOrderStatus(status)
	if !ok {
		return "", invalidArgument("Order status can only be: 1) received, 2) shipped, 3) delivered")
	}
	return normalized, nil
}

// checkOrderAmount requires the caller's total to match the total computed
// from the catalogue exactly, and returns the computed one.
func checkOrderAmount(orderAmount, realAmount decimal.Decimal) (decimal.Decimal, error) {
	if !realAmount.Equal(orderAmount) {
		return decimal.Zero, invalidArgument("Calculated amount is: %s and order amount is: %s", realAmount, orderAmount)
	}
	return realAmount, nil
}
