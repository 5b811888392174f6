package httpapi

import (
	"errors"
	"net/http"

	"ecommerce-api/internal/model"
	"ecommerce-api/internal/store"
)

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.ListCustomers(r.Context())
	if err != nil {
		h.internalError(w, r, "list customers", err)
		return
	}

	resp := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		resp = append(resp, toCustomerResponse(&customers[i]))
	}
	writeSuccess(w, http.StatusOK, "Retrieved all customers successfully.", resp)
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	c, err := h.store.FindCustomer(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Customer not found.")
		return
	}
	if err != nil {
		h.internalError(w, r, "get customer", err)
		return
	}
	writeSuccess(w, http.StatusOK, "Customer retrieved successfully.", toCustomerResponse(c))
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data", "Invalid JSON body")
		return
	}
	if errs := validateCustomer(req); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, "Invalid data", errs...)
		return
	}

	c := customerFromRequest(req)
	if err := h.store.CreateCustomer(r.Context(), c); err != nil {
		h.internalError(w, r, "create customer", err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Customer Added successfully.", toCustomerResponse(c))
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var req CustomerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data", "Invalid JSON body")
		return
	}
	if errs := validateCustomer(req); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, "Invalid data", errs...)
		return
	}
	if req.CustomerID != id {
		writeError(w, http.StatusBadRequest, "Mismatched Customer ID")
		return
	}

	c, err := h.store.UpdateCustomer(r.Context(), id, func(c *model.Customer) { applyCustomer(c, req) })
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Customer not found.")
		return
	}
	if err != nil {
		h.internalError(w, r, "update customer", err)
		return
	}
	writeSuccess(w, http.StatusOK, "Customer Updated Successfully.", toCustomerResponse(c))
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	err = h.store.DeleteCustomer(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Customer not found.")
		return
	}
	if err != nil {
		h.internalError(w, r, "delete customer", err)
		return
	}
	writeSuccess(w, http.StatusOK, "Customer Deleted Successfully.", true)
}
