package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecommerce-api/internal/model"
	"ecommerce-api/internal/store"
	"ecommerce-api/internal/store/storetest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, s *store.Store, name string, price string, qty int) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, Price: decimal.RequireFromString(price), Quantity: qty}
	require.NoError(t, s.CreateProduct(context.Background(), p))
	require.NotZero(t, p.ID)
	return p
}

func TestCustomerSoftDelete(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)

	c := &model.Customer{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	require.NoError(t, s.CreateCustomer(ctx, c))

	got, err := s.FindCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)

	require.NoError(t, s.DeleteCustomer(ctx, c.ID))

	_, err = s.FindCustomer(ctx, c.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	list, err := s.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = s.DeleteCustomer(ctx, c.ID)
	assert.ErrorIs(t, err, store.ErrNotFound, "second delete of a tombstoned row")

	_, err = s.UpdateCustomer(ctx, c.ID, func(c *model.Customer) { c.FirstName = "Ghost" })
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateProductAppliesChanges(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)
	p := newProduct(t, s, "Lamp", "12.50", 4)

	updated, err := s.UpdateProduct(ctx, p.ID, func(p *model.Product) {
		p.Quantity = 9
		p.Price = decimal.RequireFromString("15.00")
	})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Quantity)

	reloaded, err := s.FindProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, reloaded.Quantity)
	assert.True(t, reloaded.Price.Equal(decimal.RequireFromString("15")))
}

func TestOrderRoundTripLoadsLines(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)
	p := newProduct(t, s, "Mug", "10.00", 5)

	o := &model.Order{
		CustomerID:  1,
		TotalAmount: decimal.RequireFromString("20.00"),
		Status:      model.OrderPending,
		OrderDate:   time.Now(),
		Items: []model.OrderItem{
			{ProductID: p.ID, Quantity: 2, PriceAtOrder: p.Price},
		},
	}
	require.NoError(t, s.CreateOrder(ctx, o))
	require.NotZero(t, o.ID)

	require.NoError(t, s.CreatePayment(ctx, &model.Payment{
		OrderID:     o.ID,
		Amount:      o.TotalAmount,
		Status:      model.PaymentCompleted,
		PaymentType: model.PaymentTypeCC,
		PaymentDate: time.Now(),
	}))

	got, err := s.FindOrder(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Len(t, got.Payments, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(20)))

	pending, err := s.ListOrdersByStatus(ctx, model.OrderPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	none, err := s.ListOrdersByStatus(ctx, model.OrderDelivered)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = s.FindOrder(ctx, o.ID+100)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestConfirmOrderDecrementsStock(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)
	a := newProduct(t, s, "A", "1.00", 5)
	b := newProduct(t, s, "B", "2.00", 3)

	o := &model.Order{
		CustomerID: 1, TotalAmount: decimal.NewFromInt(4), Status: model.OrderPending, OrderDate: time.Now(),
		Items: []model.OrderItem{
			{ProductID: a.ID, Quantity: 2, PriceAtOrder: a.Price},
			{ProductID: b.ID, Quantity: 1, PriceAtOrder: b.Price},
		},
	}
	require.NoError(t, s.CreateOrder(ctx, o))

	require.NoError(t, s.ConfirmOrder(ctx, o.ID, model.OrderPending, o.Items))

	pa, err := s.FindProduct(ctx, a.ID)
	require.NoError(t, err)
	pb, err := s.FindProduct(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, pa.Quantity)
	assert.Equal(t, 2, pb.Quantity)

	got, err := s.FindOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderConfirmed, got.Status)

	err = s.ConfirmOrder(ctx, o.ID, model.OrderPending, o.Items)
	assert.ErrorIs(t, err, store.ErrStaleOrder, "a confirmed order cannot be confirmed twice")
}

func TestConfirmOrderRollsBackOnShortStock(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)
	a := newProduct(t, s, "A", "1.00", 5)
	b := newProduct(t, s, "B", "1.00", 1)

	o := &model.Order{
		CustomerID: 1, TotalAmount: decimal.NewFromInt(4), Status: model.OrderPending, OrderDate: time.Now(),
		Items: []model.OrderItem{
			{ProductID: a.ID, Quantity: 2, PriceAtOrder: a.Price},
			{ProductID: b.ID, Quantity: 2, PriceAtOrder: b.Price},
		},
	}
	require.NoError(t, s.CreateOrder(ctx, o))

	err := s.ConfirmOrder(ctx, o.ID, model.OrderPending, o.Items)
	var stock *store.StockError
	require.True(t, errors.As(err, &stock), "got %v", err)
	assert.Equal(t, b.ID, stock.ProductID)

	pa, err := s.FindProduct(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, pa.Quantity, "first decrement must be rolled back")

	got, err := s.FindOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderPending, got.Status)
}

func TestPaymentStatusUpdate(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)

	o := &model.Order{CustomerID: 1, TotalAmount: decimal.NewFromInt(3), Status: model.OrderPending, OrderDate: time.Now()}
	require.NoError(t, s.CreateOrder(ctx, o))

	p := &model.Payment{
		OrderID: o.ID, Amount: decimal.NewFromInt(3), Status: model.PaymentPending,
		PaymentType: model.PaymentTypeDC, PaymentDate: time.Now(),
	}
	require.NoError(t, s.CreatePayment(ctx, p))
	require.NoError(t, s.SetPaymentStatus(ctx, p.ID, model.PaymentFailed))

	got, err := s.FindPayment(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentFailed, got.Status)

	_, err = s.FindPayment(ctx, p.ID+1)
	var serr *store.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "payments", serr.Table)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
