package store

import (
	"context"
	"errors"

	"ecommerce-api/internal/model"

	"gorm.io/gorm"
)

// CreateOrder inserts the order and its items in a single transaction.
func (s *Store) CreateOrder(ctx context.Context, o *model.Order) error {
	o.ID = 0
	for i := range o.Items {
		o.Items[i].ID = 0
		o.Items[i].OrderID = 0
	}
	return wrap(s.conn(ctx).Create(o).Error, "insert", tableOrders)
}

// FindOrder loads an order together with its items and payments.
func (s *Store) FindOrder(ctx context.Context, id uint) (*model.Order, error) {
	var o model.Order
	err := withLines(s.conn(ctx)).
		Where("id = ?", id).
		Take(&o).Error
	if err != nil {
		return nil, wrap(err, "find", tableOrders)
	}
	return &o, nil
}

// ListOrdersByStatus returns every order in status, oldest first, with items
// and payments loaded.
func (s *Store) ListOrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	var orders []model.Order
	err := withLines(s.conn(ctx)).
		Where("status = ?", status).
		Order("id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, wrap(err, "list", tableOrders)
	}
	return orders, nil
}

// SetOrderStatus overwrites the status of order id.
func (s *Store) SetOrderStatus(ctx context.Context, id uint, status model.OrderStatus) error {
	res := s.conn(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status)
	return wrap(res.Error, "update", tableOrders)
}

// ConfirmOrder moves order id from status from to Confirmed and takes each
// item's quantity out of stock, all in one transaction. A product that no
// longer has enough quantity aborts the transaction with a *StockError; an
// order no longer in status from aborts it with ErrStaleOrder.
func (s *Store) ConfirmOrder(ctx context.Context, id uint, from model.OrderStatus, items []model.OrderItem) error {
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Order{}).
			Where("id = ? AND status = ?", id, from).
			Update("status", model.OrderConfirmed)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleOrder
		}

		for _, item := range items {
			res := tx.Model(&model.Product{}).
				Where("id = ? AND quantity >= ?", item.ProductID, item.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &StockError{ProductID: item.ProductID, Requested: item.Quantity}
			}
		}
		return nil
	})
	var stock *StockError
	if errors.As(err, &stock) {
		return wrap(err, "confirm", tableProducts)
	}
	return wrap(err, "confirm", tableOrders)
}

func withLines(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") })
}
