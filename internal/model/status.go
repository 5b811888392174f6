package model

import "fmt"

type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderConfirmed  OrderStatus = "Confirmed"
	OrderProcessing OrderStatus = "Processing"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
	OrderReturned   OrderStatus = "Returned"
)

var orderStatuses = []OrderStatus{
	OrderPending, OrderConfirmed, OrderProcessing, OrderDelivered, OrderCancelled, OrderReturned,
}

func (s OrderStatus) String() string { return string(s) }

// OrderStatuses returns every known order status.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

// ParseOrderStatus matches s exactly against the known order statuses.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range orderStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
	PaymentCancelled PaymentStatus = "Cancelled"
	PaymentRefund    PaymentStatus = "Refund"
)

var paymentStatuses = []PaymentStatus{
	PaymentPending, PaymentCompleted, PaymentFailed, PaymentCancelled, PaymentRefund,
}

func (s PaymentStatus) String() string { return string(s) }

// PaymentStatuses returns every known payment status.
func PaymentStatuses() []PaymentStatus {
	out := make([]PaymentStatus, len(paymentStatuses))
	copy(out, paymentStatuses)
	return out
}

// ParsePaymentStatus matches s exactly against the known payment statuses.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for _, st := range paymentStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

// Payment types understood by the gateway stand-in. Any other value is
// accepted and treated as a generic method.
const (
	PaymentTypeCOD = "COD"
	PaymentTypeCC  = "CC"
	PaymentTypeDC  = "DC"
)
