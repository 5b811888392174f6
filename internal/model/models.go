package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest value the decimal(10,2) money columns hold.
var MaxAmount = decimal.RequireFromString("99999999.99")

// Customer is a buyer. Rows are never removed; IsDeleted hides them from reads.
type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:64;not null"`
	LastName  string `gorm:"size:64"`
	Email     string `gorm:"size:128;index"`
	Phone     string `gorm:"size:32"`
	Address   string `gorm:"size:255"`
	IsDeleted bool   `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Product is a catalog entry with its quantity on hand.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:128;not null;index"`
	Description string          `gorm:"size:255"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null"`
	IsDeleted   bool            `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Order is a purchase intent. TotalAmount is fixed at creation from the
// snapshotted item prices.
type Order struct {
	ID          uint            `gorm:"primaryKey"`
	CustomerID  uint            `gorm:"not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status      OrderStatus     `gorm:"size:20;not null;index"`
	OrderDate   time.Time       `gorm:"not null;index"`
	Items       []OrderItem     `gorm:"constraint:OnDelete:CASCADE"`
	Payments    []Payment
	UpdatedAt   time.Time
}

// OrderItem binds a product, a quantity and the unit price captured when the
// order was created.
type OrderItem struct {
	ID           uint            `gorm:"primaryKey"`
	OrderID      uint            `gorm:"not null;index"`
	ProductID    uint            `gorm:"not null;index"`
	Quantity     int             `gorm:"not null"`
	PriceAtOrder decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// Subtotal is Quantity × PriceAtOrder.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.PriceAtOrder.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Payment is a monetary transaction against exactly one order.
type Payment struct {
	ID          uint            `gorm:"primaryKey"`
	OrderID     uint            `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status      PaymentStatus   `gorm:"size:20;not null;index"`
	PaymentType string          `gorm:"size:16;not null"`
	Reference   string          `gorm:"size:36"`
	PaymentDate time.Time       `gorm:"not null"`
	UpdatedAt   time.Time
}

// Tables lists every persisted record type in migration order.
var Tables = []interface{}{
	&Customer{}, &Product{}, &Order{}, &OrderItem{}, &Payment{},
}
