package metrics

import (
	"sync/atomic"
)

// Collector counts lifecycle outcomes. The zero value is ready to use and a
// nil *Collector ignores every call.
type Collector struct {
	ordersCreated       int64
	ordersRejected      int64
	ordersConfirmed     int64
	paymentsCompleted   int64
	paymentsFailed      int64
	paymentsRejected    int64
	transitionsAccepted int64
	transitionsRejected int64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) add(n *int64) {
	atomic.AddInt64(n, 1)
}

func (c *Collector) RecordOrderCreated() {
	if c != nil {
		c.add(&c.ordersCreated)
	}
}

func (c *Collector) RecordOrderRejected() {
	if c != nil {
		c.add(&c.ordersRejected)
	}
}

func (c *Collector) RecordOrderConfirmed() {
	if c != nil {
		c.add(&c.ordersConfirmed)
	}
}

func (c *Collector) RecordPaymentCompleted() {
	if c != nil {
		c.add(&c.paymentsCompleted)
	}
}

func (c *Collector) RecordPaymentFailed() {
	if c != nil {
		c.add(&c.paymentsFailed)
	}
}

func (c *Collector) RecordPaymentRejected() {
	if c != nil {
		c.add(&c.paymentsRejected)
	}
}

// RecordTransition counts an order or payment status change request.
func (c *Collector) RecordTransition(accepted bool) {
	if c == nil {
		return
	}
	if accepted {
		c.add(&c.transitionsAccepted)
		return
	}
	c.add(&c.transitionsRejected)
}

type Stats struct {
	OrdersCreated       int64 `json:"orders_created"`
	OrdersRejected      int64 `json:"orders_rejected"`
	OrdersConfirmed     int64 `json:"orders_confirmed"`
	PaymentsCompleted   int64 `json:"payments_completed"`
	PaymentsFailed      int64 `json:"payments_failed"`
	PaymentsRejected    int64 `json:"payments_rejected"`
	TransitionsAccepted int64 `json:"transitions_accepted"`
	TransitionsRejected int64 `json:"transitions_rejected"`
}

func (c *Collector) GetStats() Stats {
	if c == nil {
		return Stats{}
	}
	return Stats{
		OrdersCreated:       atomic.LoadInt64(&c.ordersCreated),
		OrdersRejected:      atomic.LoadInt64(&c.ordersRejected),
		OrdersConfirmed:     atomic.LoadInt64(&c.ordersConfirmed),
		PaymentsCompleted:   atomic.LoadInt64(&c.paymentsCompleted),
		PaymentsFailed:      atomic.LoadInt64(&c.paymentsFailed),
		PaymentsRejected:    atomic.LoadInt64(&c.paymentsRejected),
		TransitionsAccepted: atomic.LoadInt64(&c.transitionsAccepted),
		TransitionsRejected: atomic.LoadInt64(&c.transitionsRejected),
	}
}
