// Package payments records payments against pending orders, settles them
// through a fixed gateway decision table and guards later status changes.
package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ecommerce-api/internal/metrics"
	"ecommerce-api/internal/model"
	"ecommerce-api/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store is the persistence the payment lifecycle needs.
type Store interface {
	FindOrder(ctx context.Context, id uint) (*model.Order, error)
	CreatePayment(ctx context.Context, p *model.Payment) error
	FindPayment(ctx context.Context, id uint) (*model.Payment, error)
	SetPaymentStatus(ctx context.Context, id uint, status model.PaymentStatus) error
}

// PaymentResult is returned by MakePayment. Payment is nil when the payment
// was rejected.
type PaymentResult struct {
	Payment *model.Payment
	Created bool
	Message string
	Reason  model.Reason
}

// TransitionResult is returned by UpdatePaymentStatus.
type TransitionResult struct {
	PaymentID uint
	Previous  model.PaymentStatus
	Current   model.PaymentStatus
	Updated   bool
	Message   string
	Reason    model.Reason
}

type Service struct {
	store   Store
	metrics *metrics.Collector
	log     *slog.Logger
	now     func() time.Time
	newRef  func() string
}

type Option func(*Service)

func WithMetrics(m *metrics.Collector) Option { return func(s *Service) { s.metrics = m } }

func WithLogger(l *slog.Logger) Option { return func(s *Service) { s.log = l } }

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func NewService(st Store, opts ...Option) *Service {
	s := &Service{
		store:  st,
		log:    slog.Default(),
		now:    time.Now,
		newRef: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MakePayment records a payment for a Pending order whose total equals
// amount. The payment is written as Pending first, then settled through the
// gateway table and written again with its outcome.
func (s *Service) MakePayment(ctx context.Context, orderID uint, amount decimal.Decimal, paymentType string) (PaymentResult, error) {
	reject := func(reason model.Reason, msg string) (PaymentResult, error) {
		s.metrics.RecordPaymentRejected()
		s.log.InfoContext(ctx, "payment rejected", "order_id", orderID, "reason", reason)
		return PaymentResult{Reason: reason, Message: msg}, nil
	}

	order, err := s.store.FindOrder(ctx, orderID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return PaymentResult{}, fmt.Errorf("load order %d: %w", orderID, err)
	}
	if order == nil || order.Status != model.OrderPending {
		return reject(model.ReasonOrderNotPending, "Order either does not exist or is not in a pending state.")
	}
	if !amount.Equal(order.TotalAmount) {
		return reject(model.ReasonAmountMismatch, "Payment amount does not match the order total.")
	}

	p := &model.Payment{
		OrderID:     orderID,
		Amount:      amount,
		Status:      model.PaymentPending,
		PaymentType: paymentType,
		Reference:   s.newRef(),
		PaymentDate: s.now(),
	}
	if err := s.store.CreatePayment(ctx, p); err != nil {
		return PaymentResult{}, fmt.Errorf("record payment: %w", err)
	}

	outcome := ResolveOutcome(paymentType)
	if err := s.store.SetPaymentStatus(ctx, p.ID, outcome); err != nil {
		return PaymentResult{}, fmt.Errorf("settle payment %d: %w", p.ID, err)
	}
	p.Status = outcome

	switch outcome {
	case model.PaymentCompleted:
		s.metrics.RecordPaymentCompleted()
	case model.PaymentFailed:
		s.metrics.RecordPaymentFailed()
	}
	s.log.InfoContext(ctx, "payment processed",
		"payment_id", p.ID, "order_id", orderID, "type", paymentType, "status", outcome, "reference", p.Reference)

	return PaymentResult{
		Payment: p,
		Created: true,
		Message: fmt.Sprintf("Payment Processed with Status %s", outcome),
	}, nil
}

// UpdatePaymentStatus moves payment paymentID to newStatus when the ordered
// payment rules allow it. The payment and its order must exist: a missing
// one is returned as an error wrapping store.ErrNotFound.
func (s *Service) UpdatePaymentStatus(ctx context.Context, paymentID uint, newStatus model.PaymentStatus) (TransitionResult, error) {
	p, err := s.store.FindPayment(ctx, paymentID)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("update payment %d: %w", paymentID, err)
	}

	res := TransitionResult{PaymentID: paymentID, Previous: p.Status, Current: p.Status}

	if _, err := model.ParsePaymentStatus(string(newStatus)); err != nil {
		s.metrics.RecordTransition(false)
		res.Reason = model.ReasonInvalidRequest
		res.Message = fmt.Sprintf("Unknown payment status %s", newStatus)
		return res, nil
	}

	order, err := s.store.FindOrder(ctx, p.OrderID)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("update payment %d: order %d: %w", paymentID, p.OrderID, err)
	}

	if ok, msg := CheckTransition(p.Status, newStatus, order.Status); !ok {
		s.metrics.RecordTransition(false)
		s.log.InfoContext(ctx, "payment transition rejected",
			"payment_id", paymentID, "from", p.Status, "to", newStatus, "order_status", order.Status)
		res.Reason = model.ReasonInvalidTransition
		res.Message = msg
		return res, nil
	}

	if err := s.store.SetPaymentStatus(ctx, paymentID, newStatus); err != nil {
		return TransitionResult{}, fmt.Errorf("update payment %d: %w", paymentID, err)
	}

	s.metrics.RecordTransition(true)
	s.log.InfoContext(ctx, "payment status updated", "payment_id", paymentID, "from", p.Status, "to", newStatus)
	res.Current = newStatus
	res.Updated = true
	res.Message = fmt.Sprintf("Payment status updated from %s to %s", p.Status, newStatus)
	return res, nil
}

// GetPaymentDetails returns the payment or an error wrapping store.ErrNotFound.
func (s *Service) GetPaymentDetails(ctx context.Context, paymentID uint) (*model.Payment, error) {
	return s.store.FindPayment(ctx, paymentID)
}
