package orders

import (
	"testing"

	"ecommerce-api/internal/model"

	"pgregory.net/rapid"
)

func TestCanTransitionIsAStrictWhitelist(t *testing.T) {
	allowed := map[[2]model.OrderStatus]bool{
		{model.OrderPending, model.OrderProcessing}:   true,
		{model.OrderPending, model.OrderCancelled}:    true,
		{model.OrderConfirmed, model.OrderProcessing}: true,
		{model.OrderProcessing, model.OrderDelivered}: true,
	}
	statuses := append(model.OrderStatuses(), "Shipped", "", "pending")

	rapid.Check(t, func(t *rapid.T) {
		from := rapid.SampledFrom(statuses).Draw(t, "from")
		to := rapid.SampledFrom(statuses).Draw(t, "to")

		if got, want := CanTransition(from, to), allowed[[2]model.OrderStatus{from, to}]; got != want {
			t.Fatalf("CanTransition(%q, %q) = %v, want %v", from, to, got, want)
		}
	})
}

func TestNoTransitionReentersPendingOrConfirmed(t *testing.T) {
	for _, from := range model.OrderStatuses() {
		if CanTransition(from, model.OrderPending) || CanTransition(from, model.OrderConfirmed) {
			t.Errorf("%s may re-enter Pending or Confirmed", from)
		}
	}
}
