package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist or has been
// soft-deleted.
var ErrNotFound = errors.New("record not found")

// ErrStaleOrder is returned when an order changed status between the read and
// the write of a confirmation.
var ErrStaleOrder = errors.New("order status changed concurrently")

// Error carries the operation and table that failed alongside the cause.
type Error struct {
	Op    string
	Table string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// StockError reports that a product no longer had enough quantity on hand
// when an order was confirmed.
type StockError struct {
	ProductID uint
	Requested int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for product ID %d (requested %d)", e.ProductID, e.Requested)
}

func wrap(err error, op, table string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrNotFound
	}
	return &Error{Op: op, Table: table, Err: err}
}
