package store

import (
	"context"

	"ecommerce-api/internal/model"
)

// CreatePayment inserts p and fills in its generated id.
func (s *Store) CreatePayment(ctx context.Context, p *model.Payment) error {
	p.ID = 0
	return wrap(s.conn(ctx).Create(p).Error, "insert", tablePayments)
}

// FindPayment loads a payment by id.
func (s *Store) FindPayment(ctx context.Context, id uint) (*model.Payment, error) {
	var p model.Payment
	if err := s.conn(ctx).Where("id = ?", id).Take(&p).Error; err != nil {
		return nil, wrap(err, "find", tablePayments)
	}
	return &p, nil
}

// SetPaymentStatus overwrites the status of payment id.
func (s *Store) SetPaymentStatus(ctx context.Context, id uint, status model.PaymentStatus) error {
	res := s.conn(ctx).
		Model(&model.Payment{}).
		Where("id = ?", id).
		Update("status", status)
	return wrap(res.Error, "update", tablePayments)
}
