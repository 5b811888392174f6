package payments

import "ecommerce-api/internal/model"

// orderShipped is an order status some upstream systems report. No order
// transition here produces it, but a payment may still be completed against it.
const orderShipped model.OrderStatus = "Shipped"

// rule is one guarded step of the payment transition check. The first rule
// whose guard matches decides the outcome.
type rule struct {
	matches func(current, next model.PaymentStatus, order model.OrderStatus) bool
	allow   bool
	message string
}

var paymentRules = []rule{
	{
		matches: func(cur, next model.PaymentStatus, _ model.OrderStatus) bool {
			return cur == model.PaymentCompleted && next != model.PaymentRefund
		},
		message: "A completed payment can only be moved to Refund",
	},
	{
		matches: func(cur, next model.PaymentStatus, _ model.OrderStatus) bool {
			return cur == model.PaymentPending && next == model.PaymentCancelled
		},
		allow: true,
	},
	{
		matches: func(cur, next model.PaymentStatus, order model.OrderStatus) bool {
			return cur == model.PaymentCompleted && next == model.PaymentRefund && order != model.OrderReturned
		},
		message: "Refund is only allowed once the order has been returned",
	},
	{
		matches: func(cur, next model.PaymentStatus, _ model.OrderStatus) bool {
			return next == model.PaymentFailed && (cur == model.PaymentCompleted || cur == model.PaymentCancelled)
		},
		message: "A completed or cancelled payment cannot be marked as Failed",
	},
	{
		matches: func(cur, next model.PaymentStatus, order model.OrderStatus) bool {
			return cur == model.PaymentPending && next == model.PaymentCompleted &&
				(order == orderShipped || order == model.OrderConfirmed)
		},
		allow: true,
	},
}

// CheckTransition runs the ordered payment rules. It returns true when the
// move from current to next is allowed for a payment whose order is in
// orderStatus, and otherwise the message of the rule that rejected it.
// A transition no rule matches is allowed.
func CheckTransition(current, next model.PaymentStatus, orderStatus model.OrderStatus) (bool, string) {
	for _, r := range paymentRules {
		if r.matches(current, next, orderStatus) {
			return r.allow, r.message
		}
	}
	return true, ""
}
