// Package httpapi exposes customers, products, orders and payments over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"ecommerce-api/internal/metrics"
	"ecommerce-api/internal/orders"
	"ecommerce-api/internal/payments"
	"ecommerce-api/internal/store"

	"github.com/go-chi/chi/v5"
)

var errInvalidID = errors.New("invalid id")

type Handler struct {
	store    *store.Store
	orders   *orders.Service
	payments *payments.Service
	metrics  *metrics.Collector
	log      *slog.Logger
}

func New(st *store.Store, o *orders.Service, p *payments.Service, m *metrics.Collector, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		store:    st,
		orders:   o,
		payments: p,
		metrics:  m,
		log:      log,
	}
}

// pathID reads the {id} URL parameter. Zero is not a valid id.
func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// internalError logs err and answers 500 without leaking it.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.log.ErrorContext(r.Context(), op+" failed", "error", err, "path", r.URL.Path)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
