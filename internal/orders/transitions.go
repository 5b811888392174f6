package orders

import (
	"slices"

	"ecommerce-api/internal/model"
)

// orderTransitions is the whitelist of status changes reachable through
// UpdateOrderStatus. Confirmed is entered only by ConfirmOrder.
var orderTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderPending:    {model.OrderProcessing, model.OrderCancelled},
	model.OrderConfirmed:  {model.OrderProcessing},
	model.OrderProcessing: {model.OrderDelivered},
}

// CanTransition reports whether an order in status from may move to to.
func CanTransition(from, to model.OrderStatus) bool {
	return slices.Contains(orderTransitions[from], to)
}
