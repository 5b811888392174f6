package payments_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ecommerce-api/internal/metrics"
	"ecommerce-api/internal/model"
	"ecommerce-api/internal/payments"
	"ecommerce-api/internal/store"
	"ecommerce-api/internal/store/storetest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func seedOrder(t *testing.T, s *store.Store, total string, status model.OrderStatus) *model.Order {
	t.Helper()
	o := &model.Order{
		CustomerID:  1,
		TotalAmount: decimal.RequireFromString(total),
		Status:      status,
		OrderDate:   time.Now(),
	}
	require.NoError(t, s.CreateOrder(context.Background(), o))
	return o
}

func TestMakePaymentSettlesByType(t *testing.T) {
	tests := []struct {
		paymentType string
		want        model.PaymentStatus
	}{
		{model.PaymentTypeCOD, model.PaymentCompleted},
		{model.PaymentTypeCC, model.PaymentCompleted},
		{model.PaymentTypeDC, model.PaymentFailed},
		{"Wallet", model.PaymentCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.paymentType, func(t *testing.T) {
			ctx := context.Background()
			s := storetest.New(t)
			m := metrics.New()
			svc := payments.NewService(s, payments.WithLogger(quiet), payments.WithMetrics(m))
			o := seedOrder(t, s, "20.00", model.OrderPending)

			res, err := svc.MakePayment(ctx, o.ID, decimal.RequireFromString("20"), tt.paymentType)
			require.NoError(t, err)
			require.True(t, res.Created, res.Message)
			assert.Equal(t, tt.want, res.Payment.Status)
			assert.Equal(t, "Payment Processed with Status "+string(tt.want), res.Message)
			assert.NotEmpty(t, res.Payment.Reference)

			stored, err := s.FindPayment(ctx, res.Payment.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stored.Status)
			assert.True(t, stored.Amount.Equal(o.TotalAmount))

			stats := m.GetStats()
			assert.EqualValues(t, 1, stats.PaymentsCompleted+stats.PaymentsFailed)
		})
	}
}

func TestMakePaymentRejections(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)
	svc := payments.NewService(s, payments.WithLogger(quiet))

	pending := seedOrder(t, s, "20.00", model.OrderPending)
	confirmed := seedOrder(t, s, "20.00", model.OrderConfirmed)

	res, err := svc.MakePayment(ctx, pending.ID, decimal.RequireFromString("19.99"), model.PaymentTypeCC)
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Nil(t, res.Payment)
	assert.Equal(t, model.ReasonAmountMismatch, res.Reason)

	res, err = svc.MakePayment(ctx, confirmed.ID, decimal.RequireFromString("20"), model.PaymentTypeCC)
	require.NoError(t, err)
	assert.Equal(t, model.ReasonOrderNotPending, res.Reason)
	assert.Equal(t, "Order either does not exist or is not in a pending state.", res.Message)

	res, err = svc.MakePayment(ctx, 9999, decimal.RequireFromString("20"), model.PaymentTypeCC)
	require.NoError(t, err)
	assert.Equal(t, model.ReasonOrderNotPending, res.Reason)

	o, err := s.FindOrder(ctx, pending.ID)
	require.NoError(t, err)
	assert.Empty(t, o.Payments, "rejected payments are never written")
}

func TestUpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)
	svc := payments.NewService(s, payments.WithLogger(quiet))

	o := seedOrder(t, s, "5.00", model.OrderPending)
	paid, err := svc.MakePayment(ctx, o.ID, decimal.NewFromInt(5), model.PaymentTypeCOD)
	require.NoError(t, err)
	require.True(t, paid.Created)

	res, err := svc.UpdatePaymentStatus(ctx, paid.Payment.ID, model.PaymentCancelled)
	require.NoError(t, err)
	assert.False(t, res.Updated)
	assert.Equal(t, model.ReasonInvalidTransition, res.Reason)
	assert.Equal(t, model.PaymentCompleted, res.Current)

	res, err = svc.UpdatePaymentStatus(ctx, paid.Payment.ID, model.PaymentRefund)
	require.NoError(t, err)
	assert.False(t, res.Updated, "refund needs a returned order")

	require.NoError(t, s.SetOrderStatus(ctx, o.ID, model.OrderReturned))
	res, err = svc.UpdatePaymentStatus(ctx, paid.Payment.ID, model.PaymentRefund)
	require.NoError(t, err)
	require.True(t, res.Updated, res.Message)
	assert.Equal(t, model.PaymentCompleted, res.Previous)
	assert.Equal(t, model.PaymentRefund, res.Current)

	stored, err := svc.GetPaymentDetails(ctx, paid.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentRefund, stored.Status)
}

func TestUpdatePaymentStatusPendingToCancelled(t *testing.T) {
	ctx := context.Background()
	s := storetest.New(t)
	svc := payments.NewService(s, payments.WithLogger(quiet))

	o := seedOrder(t, s, "5.00", model.OrderPending)
	p := &model.Payment{
		OrderID: o.ID, Amount: o.TotalAmount, Status: model.PaymentPending,
		PaymentType: model.PaymentTypeCC, PaymentDate: time.Now(),
	}
	require.NoError(t, s.CreatePayment(ctx, p))

	res, err := svc.UpdatePaymentStatus(ctx, p.ID, model.PaymentCancelled)
	require.NoError(t, err)
	assert.True(t, res.Updated)
	assert.Equal(t, "Payment status updated from Pending to Cancelled", res.Message)

	res, err = svc.UpdatePaymentStatus(ctx, p.ID, model.PaymentFailed)
	require.NoError(t, err)
	assert.False(t, res.Updated)

	res, err = svc.UpdatePaymentStatus(ctx, p.ID, "Settled")
	require.NoError(t, err)
	assert.Equal(t, model.ReasonInvalidRequest, res.Reason)
}

func TestUpdatePaymentStatusMissingPaymentIsAnError(t *testing.T) {
	s := storetest.New(t)
	svc := payments.NewService(s, payments.WithLogger(quiet))

	_, err := svc.UpdatePaymentStatus(context.Background(), 42, model.PaymentCancelled)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.GetPaymentDetails(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
