package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectorCountsConcurrently(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.RecordOrderCreated()
			c.RecordTransition(true)
			c.RecordTransition(false)
		}()
	}
	wg.Wait()
	c.RecordPaymentFailed()

	stats := c.GetStats()
	assert.EqualValues(t, 50, stats.OrdersCreated)
	assert.EqualValues(t, 50, stats.TransitionsAccepted)
	assert.EqualValues(t, 50, stats.TransitionsRejected)
	assert.EqualValues(t, 1, stats.PaymentsFailed)
	assert.Zero(t, stats.PaymentsCompleted)
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.RecordOrderCreated()
		c.RecordPaymentCompleted()
		c.RecordTransition(true)
	})
	assert.Equal(t, Stats{}, c.GetStats())
}
