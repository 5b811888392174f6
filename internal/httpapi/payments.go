package httpapi

import (
	"errors"
	"net/http"

	"ecommerce-api/internal/model"
	"ecommerce-api/internal/store"
)

func (h *Handler) MakePayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data", "Invalid JSON body")
		return
	}

	res, err := h.payments.MakePayment(r.Context(), req.OrderID, req.Amount, req.PaymentType)
	if err != nil {
		h.internalError(w, r, "make payment", err)
		return
	}
	if !res.Created {
		writeError(w, statusForReason(res.Reason), res.Message, string(res.Reason))
		return
	}
	writeSuccess(w, http.StatusCreated, res.Message, toPaymentResponse(res.Payment))
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	p, err := h.payments.GetPaymentDetails(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Payment not found.")
		return
	}
	if err != nil {
		h.internalError(w, r, "get payment", err)
		return
	}
	writeSuccess(w, http.StatusOK, "Payment retrieved successfully.", toPaymentResponse(p))
}

func (h *Handler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	var req StatusRequest
	if err := decode(r, &req); err != nil || req.Status == "" {
		writeError(w, http.StatusBadRequest, "Invalid data", "status is required")
		return
	}

	res, err := h.payments.UpdatePaymentStatus(r.Context(), id, model.PaymentStatus(req.Status))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Payment not found.")
		return
	}
	if err != nil {
		h.internalError(w, r, "update payment status", err)
		return
	}
	if !res.Updated {
		writeError(w, statusForReason(res.Reason), res.Message, string(res.Reason))
		return
	}
	writeSuccess(w, http.StatusOK, res.Message, PaymentStatusResponse{
		PaymentID:      res.PaymentID,
		PreviousStatus: res.Previous.String(),
		CurrentStatus:  res.Current.String(),
		IsUpdated:      true,
	})
}
