package httpapi

import (
	"net/http"
	"time"

	"ecommerce-api/internal/idempotency"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every route. When idem is non-nil, order and payment
// creation honour the Idempotency-Key header.
func NewRouter(h *Handler, idem *idempotency.Store, timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	once := func(next http.Handler) http.Handler { return next }
	if idem != nil {
		once = idempotency.Middleware(idem, h.log)
	}

	r.Get("/healthz", h.HealthCheck)
	r.Get("/metrics", h.GetMetrics)

	r.Route("/api", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", h.ListCustomers)
			r.Post("/", h.CreateCustomer)
			r.Get("/{id}", h.GetCustomer)
			r.Put("/{id}", h.UpdateCustomer)
			r.Delete("/{id}", h.DeleteCustomer)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Post("/", h.CreateProduct)
			r.Get("/{id}", h.GetProduct)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.ListOrders)
			r.With(once).Post("/", h.CreateOrder)
			r.Get("/{id}", h.GetOrder)
			r.Put("/{id}/confirm", h.ConfirmOrder)
			r.Put("/{id}/status", h.UpdateOrderStatus)
		})

		r.Route("/payments", func(r chi.Router) {
			r.With(once).Post("/", h.MakePayment)
			r.Get("/{id}", h.GetPayment)
			r.Put("/{id}/status", h.UpdatePaymentStatus)
		})
	})

	return r
}
