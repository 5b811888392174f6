package payments

import "ecommerce-api/internal/model"

// gatewayOutcomes stands in for a payment gateway: the outcome of a recorded
// payment is decided by its type alone.
var gatewayOutcomes = map[string]model.PaymentStatus{
	model.PaymentTypeCOD: model.PaymentCompleted,
	model.PaymentTypeCC:  model.PaymentCompleted,
	model.PaymentTypeDC:  model.PaymentFailed,
}

// ResolveOutcome returns the status a payment of paymentType settles to.
// Unknown types complete.
func ResolveOutcome(paymentType string) model.PaymentStatus {
	if st, ok := gatewayOutcomes[paymentType]; ok {
		return st
	}
	return model.PaymentCompleted
}
