package httpapi

import (
	"net/mail"
	"strings"

	"ecommerce-api/internal/model"
	"ecommerce-api/internal/orders"
)

const moneyPlaces = 2

func customerFromRequest(req CustomerRequest) *model.Customer {
	c := &model.Customer{}
	applyCustomer(c, req)
	return c
}

func applyCustomer(c *model.Customer, req CustomerRequest) {
	c.FirstName = strings.TrimSpace(req.FirstName)
	c.LastName = strings.TrimSpace(req.LastName)
	c.Email = strings.TrimSpace(req.Email)
	c.Phone = strings.TrimSpace(req.Phone)
	c.Address = strings.TrimSpace(req.Address)
}

func toCustomerResponse(c *model.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		CreatedAt:  c.CreatedAt,
	}
}

func validateCustomer(req CustomerRequest) []string {
	var errs []string
	if strings.TrimSpace(req.FirstName) == "" {
		errs = append(errs, "firstName is required")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		errs = append(errs, "email must be a valid address")
	}
	return errs
}

func productFromRequest(req ProductRequest) *model.Product {
	p := &model.Product{}
	applyProduct(p, req)
	return p
}

func applyProduct(p *model.Product, req ProductRequest) {
	p.Name = strings.TrimSpace(req.Name)
	p.Description = strings.TrimSpace(req.Description)
	p.Price = req.Price.Round(moneyPlaces)
	p.Quantity = req.Quantity
}

func toProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(moneyPlaces),
		Quantity:    p.Quantity,
	}
}

func validateProduct(req ProductRequest) []string {
	var errs []string
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	if req.Price.IsNegative() {
		errs = append(errs, "price must not be negative")
	}
	if req.Price.GreaterThan(model.MaxAmount) {
		errs = append(errs, "price must not exceed "+model.MaxAmount.StringFixed(moneyPlaces))
	}
	if req.Quantity < 0 {
		errs = append(errs, "quantity must not be negative")
	}
	return errs
}

func itemRequests(items []OrderItemRequest) []orders.ItemRequest {
	out := make([]orders.ItemRequest, len(items))
	for i, it := range items {
		out[i] = orders.ItemRequest{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return out
}

func toOrderResponse(o *model.Order) OrderResponse {
	resp := OrderResponse{
		OrderID:     o.ID,
		CustomerID:  o.CustomerID,
		TotalAmount: o.TotalAmount.StringFixed(moneyPlaces),
		Status:      o.Status.String(),
		OrderDate:   o.OrderDate,
		Items:       make([]OrderItemResponse, 0, len(o.Items)),
		Payments:    make([]PaymentResponse, 0, len(o.Payments)),
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			OrderItemID:  it.ID,
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			PriceAtOrder: it.PriceAtOrder.StringFixed(moneyPlaces),
			Subtotal:     it.Subtotal().StringFixed(moneyPlaces),
		})
	}
	for i := range o.Payments {
		resp.Payments = append(resp.Payments, toPaymentResponse(&o.Payments[i]))
	}
	return resp
}

func toPaymentResponse(p *model.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.ID,
		OrderID:     p.OrderID,
		Amount:      p.Amount.StringFixed(moneyPlaces),
		Status:      p.Status.String(),
		PaymentType: p.PaymentType,
		Reference:   p.Reference,
		PaymentDate: p.PaymentDate,
	}
}
