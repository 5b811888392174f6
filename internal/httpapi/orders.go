package httpapi

import (
	"errors"
	"net/http"

	"ecommerce-api/internal/model"
	"ecommerce-api/internal/store"
)

// ListOrders answers GET /api/orders?status=X. The status filter is required.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	status, err := model.ParseOrderStatus(r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order status", err.Error())
		return
	}

	list, err := h.orders.GetAllOrders(r.Context(), status)
	if err != nil {
		h.internalError(w, r, "list orders", err)
		return
	}

	resp := make([]OrderResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toOrderResponse(&list[i]))
	}
	writeSuccess(w, http.StatusOK, "Retrieved orders successfully.", resp)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	o, err := h.orders.GetOrderDetails(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Order not found.")
		return
	}
	if err != nil {
		h.internalError(w, r, "get order", err)
		return
	}
	writeSuccess(w, http.StatusOK, "Order retrieved successfully.", toOrderResponse(o))
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data", "Invalid JSON body")
		return
	}

	res, err := h.orders.CreateOrder(r.Context(), req.CustomerID, itemRequests(req.Items))
	if err != nil {
		h.internalError(w, r, "create order", err)
		return
	}
	if !res.Created {
		writeError(w, statusForReason(res.Reason), res.Message, string(res.Reason))
		return
	}
	writeSuccess(w, http.StatusCreated, res.Message, CreateOrderResponse{
		OrderID: res.OrderID,
		Status:  res.Status.String(),
	})
}

func (h *Handler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	res, err := h.orders.ConfirmOrder(r.Context(), id)
	if err != nil {
		h.internalError(w, r, "confirm order", err)
		return
	}
	if !res.Confirmed {
		writeError(w, statusForReason(res.Reason), res.Message, string(res.Reason))
		return
	}
	writeSuccess(w, http.StatusOK, res.Message, ConfirmOrderResponse{OrderID: res.OrderID, IsConfirmed: true})
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req StatusRequest
	if err := decode(r, &req); err != nil || req.Status == "" {
		writeError(w, http.StatusBadRequest, "Invalid data", "status is required")
		return
	}

	status, err := model.ParseOrderStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order status", err.Error())
		return
	}

	res, err := h.orders.UpdateOrderStatus(r.Context(), id, status)
	if err != nil {
		h.internalError(w, r, "update order status", err)
		return
	}
	if !res.Updated {
		writeError(w, statusForReason(res.Reason), res.Message, string(res.Reason))
		return
	}
	writeSuccess(w, http.StatusOK, res.Message, OrderStatusResponse{OrderID: res.OrderID, Status: res.Status.String()})
}
