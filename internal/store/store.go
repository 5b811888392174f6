// Package store persists customers, products, orders and payments through gorm.
//
// Every read path filters soft-deleted customers and products; rows are never
// physically removed. Lookups of absent records return ErrNotFound wrapped in
// an *Error.
package store

import (
	"context"

	"ecommerce-api/internal/db"

	"gorm.io/gorm"
)

const (
	tableCustomers  = "customers"
	tableProducts   = "products"
	tableOrders     = "orders"
	tableOrderItems = "order_items"
	tablePayments   = "payments"
)

// Store is the gorm-backed persistence layer.
type Store struct {
	db *gorm.DB
}

// New wraps an open gorm connection.
func New(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	return db.Ping(ctx, s.db)
}
