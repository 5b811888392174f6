// Package orders creates orders from validated line items, confirms them
// against completed payments and governs their status transitions.
//
// Business-rule failures are reported in the returned result with a
// model.Reason and a message; the error return is reserved for store failures.
package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"ecommerce-api/internal/inventory"
	"ecommerce-api/internal/metrics"
	"ecommerce-api/internal/model"
	"ecommerce-api/internal/store"

	"github.com/shopspring/decimal"
)

// Store is the persistence the order lifecycle needs.
type Store interface {
	FindCustomer(ctx context.Context, id uint) (*model.Customer, error)
	CreateOrder(ctx context.Context, o *model.Order) error
	FindOrder(ctx context.Context, id uint) (*model.Order, error)
	ListOrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	SetOrderStatus(ctx context.Context, id uint, status model.OrderStatus) error
	ConfirmOrder(ctx context.Context, id uint, from model.OrderStatus, items []model.OrderItem) error
}

// StockChecker validates a requested quantity of one product.
type StockChecker interface {
	ValidateItem(ctx context.Context, productID uint, qty int) (*model.Product, error)
}

// ItemRequest is one requested order line.
type ItemRequest struct {
	ProductID uint
	Quantity  int
}

type CreateResult struct {
	OrderID uint
	Status  model.OrderStatus
	Created bool
	Message string
	Reason  model.Reason
}

type ConfirmResult struct {
	OrderID   uint
	Confirmed bool
	Message   string
	Reason    model.Reason
}

type StatusResult struct {
	OrderID uint
	Status  model.OrderStatus
	Updated bool
	Message string
	Reason  model.Reason
}

// MaxLineQuantity bounds the quantity of a single order line.
const MaxLineQuantity = 1_000_000

type Service struct {
	store   Store
	stock   StockChecker
	metrics *metrics.Collector
	log     *slog.Logger
	now     func() time.Time
}

type Option func(*Service)

func WithMetrics(m *metrics.Collector) Option { return func(s *Service) { s.metrics = m } }

func WithLogger(l *slog.Logger) Option { return func(s *Service) { s.log = l } }

// WithClock overrides the time source used for OrderDate.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func NewService(st Store, stock StockChecker, opts ...Option) *Service {
	s := &Service{
		store: st,
		stock: stock,
		log:   slog.Default(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder validates every line against live stock before writing
// anything. The first failing product aborts the order. On success the order
// is stored as Pending with each line's price captured from the product.
func (s *Service) CreateOrder(ctx context.Context, customerID uint, items []ItemRequest) (CreateResult, error) {
	reject := func(reason model.Reason, msg string) (CreateResult, error) {
		s.metrics.RecordOrderRejected()
		s.log.InfoContext(ctx, "order rejected", "customer_id", customerID, "reason", reason, "message", msg)
		return CreateResult{Reason: reason, Message: msg}, nil
	}

	if len(items) == 0 {
		return reject(model.ReasonInvalidRequest, "Order must contain at least one item")
	}
	for _, it := range items {
		if it.Quantity <= 0 || it.Quantity > MaxLineQuantity {
			return reject(model.ReasonInvalidRequest,
				fmt.Sprintf("Invalid quantity %d for product ID %d", it.Quantity, it.ProductID))
		}
	}

	if _, err := s.store.FindCustomer(ctx, customerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return reject(model.ReasonNotFound, fmt.Sprintf("Customer %d not found", customerID))
		}
		return CreateResult{}, fmt.Errorf("load customer %d: %w", customerID, err)
	}

	// Lines for the same product are validated against their running sum.
	requested := make(map[uint]int, len(items))
	lines := make([]model.OrderItem, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		if it.Quantity > math.MaxInt-requested[it.ProductID] {
			return reject(model.ReasonInsufficientStock,
				fmt.Sprintf("Insufficient stock for product ID %d", it.ProductID))
		}
		requested[it.ProductID] += it.Quantity
		p, err := s.stock.ValidateItem(ctx, it.ProductID, requested[it.ProductID])
		if err != nil {
			var short *inventory.InsufficientStockError
			if errors.As(err, &short) {
				return reject(model.ReasonInsufficientStock, short.Error())
			}
			return CreateResult{}, err
		}
		line := model.OrderItem{
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			PriceAtOrder: p.Price,
		}
		total = total.Add(line.Subtotal())
		lines = append(lines, line)
	}
	if total.GreaterThan(model.MaxAmount) {
		return reject(model.ReasonInvalidRequest,
			fmt.Sprintf("Order total %s exceeds the maximum of %s", total.StringFixed(2), model.MaxAmount.StringFixed(2)))
	}

	order := &model.Order{
		CustomerID:  customerID,
		TotalAmount: total,
		Status:      model.OrderPending,
		OrderDate:   s.now(),
		Items:       lines,
	}
	if err := s.store.CreateOrder(ctx, order); err != nil {
		return CreateResult{}, fmt.Errorf("create order: %w", err)
	}

	s.metrics.RecordOrderCreated()
	s.log.InfoContext(ctx, "order created", "order_id", order.ID, "customer_id", customerID, "total", total.StringFixed(2))
	return CreateResult{
		OrderID: order.ID,
		Status:  model.OrderPending,
		Created: true,
		Message: "Order created successfully",
	}, nil
}

// ConfirmOrder requires a Completed payment matching the order total. It then
// takes every line's quantity out of stock and marks the order Confirmed in
// one transaction. Stock is re-checked at this point: a product that no longer
// has enough quantity rejects the confirmation and nothing changes.
func (s *Service) ConfirmOrder(ctx context.Context, orderID uint) (ConfirmResult, error) {
	reject := func(reason model.Reason, msg string) (ConfirmResult, error) {
		s.log.InfoContext(ctx, "order confirmation rejected", "order_id", orderID, "reason", reason)
		return ConfirmResult{OrderID: orderID, Reason: reason, Message: msg}, nil
	}

	order, err := s.store.FindOrder(ctx, orderID)
	if errors.Is(err, store.ErrNotFound) {
		return reject(model.ReasonNotFound, "Order not found")
	}
	if err != nil {
		return ConfirmResult{}, fmt.Errorf("load order %d: %w", orderID, err)
	}

	if !hasSettledPayment(order) {
		return reject(model.ReasonPaymentNotCompleted, "Payment not completed or mismatch with order total")
	}
	if order.Status != model.OrderPending {
		return reject(model.ReasonInvalidTransition,
			fmt.Sprintf("Order is %s and cannot be confirmed", order.Status))
	}

	err = s.store.ConfirmOrder(ctx, order.ID, order.Status, order.Items)
	var short *store.StockError
	switch {
	case errors.As(err, &short):
		return reject(model.ReasonInsufficientStock,
			fmt.Sprintf("Insufficient stock for product ID %d", short.ProductID))
	case errors.Is(err, store.ErrStaleOrder):
		return reject(model.ReasonInvalidTransition, "Order status changed during confirmation")
	case err != nil:
		return ConfirmResult{}, fmt.Errorf("confirm order %d: %w", orderID, err)
	}

	s.metrics.RecordOrderConfirmed()
	s.log.InfoContext(ctx, "order confirmed", "order_id", orderID, "items", len(order.Items))
	return ConfirmResult{
		OrderID:   orderID,
		Confirmed: true,
		Message:   "Order confirmed successfully",
	}, nil
}

// UpdateOrderStatus applies newStatus when the transition whitelist allows it.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID uint, newStatus model.OrderStatus) (StatusResult, error) {
	if _, err := model.ParseOrderStatus(string(newStatus)); err != nil {
		return StatusResult{OrderID: orderID, Reason: model.ReasonInvalidRequest,
			Message: fmt.Sprintf("Unknown order status %s", newStatus)}, nil
	}

	order, err := s.store.FindOrder(ctx, orderID)
	if errors.Is(err, store.ErrNotFound) {
		return StatusResult{OrderID: orderID, Reason: model.ReasonNotFound, Message: "Order not found"}, nil
	}
	if err != nil {
		return StatusResult{}, fmt.Errorf("load order %d: %w", orderID, err)
	}

	if !CanTransition(order.Status, newStatus) {
		s.metrics.RecordTransition(false)
		return StatusResult{
			OrderID: orderID,
			Status:  order.Status,
			Reason:  model.ReasonInvalidTransition,
			Message: fmt.Sprintf("Invalid status transition from %s to %s", order.Status, newStatus),
		}, nil
	}

	if err := s.store.SetOrderStatus(ctx, orderID, newStatus); err != nil {
		return StatusResult{}, fmt.Errorf("update order %d: %w", orderID, err)
	}

	s.metrics.RecordTransition(true)
	s.log.InfoContext(ctx, "order status updated", "order_id", orderID, "from", order.Status, "to", newStatus)
	return StatusResult{
		OrderID: orderID,
		Status:  newStatus,
		Updated: true,
		Message: fmt.Sprintf("Order status updated to %s", newStatus),
	}, nil
}

// GetOrderDetails returns the order with its items and payments, or an error
// wrapping store.ErrNotFound.
func (s *Service) GetOrderDetails(ctx context.Context, orderID uint) (*model.Order, error) {
	return s.store.FindOrder(ctx, orderID)
}

// GetAllOrders returns every order in status with items and payments.
func (s *Service) GetAllOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	return s.store.ListOrdersByStatus(ctx, status)
}

func hasSettledPayment(o *model.Order) bool {
	for _, p := range o.Payments {
		if p.Status == model.PaymentCompleted && p.Amount.Equal(o.TotalAmount) {
			return true
		}
	}
	return false
}
