package model

// Reason classifies a business-rule failure reported in a lifecycle result.
// The empty Reason means the operation succeeded.
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonInvalidRequest      Reason = "invalid_request"
	ReasonNotFound            Reason = "not_found"
	ReasonInsufficientStock   Reason = "insufficient_stock"
	ReasonAmountMismatch      Reason = "amount_mismatch"
	ReasonOrderNotPending     Reason = "order_not_pending"
	ReasonPaymentNotCompleted Reason = "payment_not_completed"
	ReasonInvalidTransition   Reason = "invalid_transition"
)
