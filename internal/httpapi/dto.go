package httpapi

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerRequest struct {
	CustomerID uint   `json:"customerId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

type CustomerResponse struct {
	CustomerID uint      `json:"customerId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ProductRequest struct {
	ProductID   uint            `json:"productId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

type ProductResponse struct {
	ProductID   uint   `json:"productId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
}

type OrderItemRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerID uint               `json:"customerId"`
	Items      []OrderItemRequest `json:"items"`
}

type CreateOrderResponse struct {
	OrderID uint   `json:"orderId"`
	Status  string `json:"status"`
}

type ConfirmOrderResponse struct {
	OrderID     uint `json:"orderId"`
	IsConfirmed bool `json:"isConfirmed"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type OrderStatusResponse struct {
	OrderID uint   `json:"orderId"`
	Status  string `json:"status"`
}

type OrderItemResponse struct {
	OrderItemID  uint   `json:"orderItemId"`
	ProductID    uint   `json:"productId"`
	Quantity     int    `json:"quantity"`
	PriceAtOrder string `json:"priceAtOrder"`
	Subtotal     string `json:"subtotal"`
}

type OrderResponse struct {
	OrderID     uint                `json:"orderId"`
	CustomerID  uint                `json:"customerId"`
	TotalAmount string              `json:"totalAmount"`
	Status      string              `json:"status"`
	OrderDate   time.Time           `json:"orderDate"`
	Items       []OrderItemResponse `json:"items"`
	Payments    []PaymentResponse   `json:"payments"`
}

type PaymentRequest struct {
	OrderID     uint            `json:"orderId"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentType string          `json:"paymentType"`
}

type PaymentResponse struct {
	PaymentID   uint      `json:"paymentId"`
	OrderID     uint      `json:"orderId"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	PaymentType string    `json:"paymentType"`
	Reference   string    `json:"reference"`
	PaymentDate time.Time `json:"paymentDate"`
}

type PaymentStatusResponse struct {
	PaymentID      uint   `json:"paymentId"`
	PreviousStatus string `json:"previousStatus"`
	CurrentStatus  string `json:"currentStatus"`
	IsUpdated      bool   `json:"isUpdated"`
}
