// Package inventory checks requested quantities against live stock.
package inventory

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-api/internal/model"
	"ecommerce-api/internal/store"
)

// ProductFinder loads a live (not soft-deleted) product.
type ProductFinder interface {
	FindProduct(ctx context.Context, id uint) (*model.Product, error)
}

// InsufficientStockError reports the product that failed validation.
type InsufficientStockError struct {
	ProductID uint
	Requested int
	Available int
	Missing   bool
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for product ID %d", e.ProductID)
}

// Checker validates order lines. It never writes.
type Checker struct {
	products ProductFinder
}

func NewChecker(products ProductFinder) *Checker {
	return &Checker{products: products}
}

// ValidateItem returns the product when it exists, is not soft-deleted and has
// at least qty units on hand. Otherwise it returns an *InsufficientStockError.
// Any other error comes from the store.
func (c *Checker) ValidateItem(ctx context.Context, productID uint, qty int) (*model.Product, error) {
	p, err := c.products.FindProduct(ctx, productID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &InsufficientStockError{ProductID: productID, Requested: qty, Missing: true}
	}
	if err != nil {
		return nil, fmt.Errorf("validate product %d: %w", productID, err)
	}
	if p.IsDeleted {
		return nil, &InsufficientStockError{ProductID: productID, Requested: qty, Missing: true}
	}
	if p.Quantity < qty {
		return nil, &InsufficientStockError{ProductID: productID, Requested: qty, Available: p.Quantity}
	}
	return p, nil
}
