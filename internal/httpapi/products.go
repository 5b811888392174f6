package httpapi

import (
	"errors"
	"net/http"

	"ecommerce-api/internal/model"
	"ecommerce-api/internal/store"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		h.internalError(w, r, "list products", err)
		return
	}

	resp := make([]ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, toProductResponse(&products[i]))
	}
	writeSuccess(w, http.StatusOK, "Retrieved all products successfully.", resp)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	p, err := h.store.FindProduct(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Product not found.")
		return
	}
	if err != nil {
		h.internalError(w, r, "get product", err)
		return
	}
	writeSuccess(w, http.StatusOK, "Product retrieved successfully.", toProductResponse(p))
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data", "Invalid JSON body")
		return
	}
	if errs := validateProduct(req); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, "Invalid data", errs...)
		return
	}

	p := productFromRequest(req)
	if err := h.store.CreateProduct(r.Context(), p); err != nil {
		h.internalError(w, r, "create product", err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Product created successfully.", toProductResponse(p))
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req ProductRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data", "Invalid JSON body")
		return
	}
	if errs := validateProduct(req); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, "Invalid data", errs...)
		return
	}
	if req.ProductID != id {
		writeError(w, http.StatusBadRequest, "Mismatched product ID")
		return
	}

	p, err := h.store.UpdateProduct(r.Context(), id, func(p *model.Product) { applyProduct(p, req) })
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Product not found.")
		return
	}
	if err != nil {
		h.internalError(w, r, "update product", err)
		return
	}
	writeSuccess(w, http.StatusOK, "Product updated successfully.", toProductResponse(p))
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	err = h.store.DeleteProduct(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Product not found.")
		return
	}
	if err != nil {
		h.internalError(w, r, "delete product", err)
		return
	}
	writeSuccess(w, http.StatusOK, "Product deleted successfully.", true)
}
