package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
)

// CustomerRef referencia polimórfica al comprador de una orden: un perfil de
// empresa o de persona, discriminado por Kind. Variante cerrada: se resuelve
// siempre con una consulta explícita según Kind, nunca por reflexión.
type CustomerRef struct {
	Kind string // "company" | "person"
	ID   string // ID del CompanyProfile o PersonProfile según Kind
}

// Order representa una orden de compra.
type Order struct {
	ID        string
	Customer  CustomerRef
	Status    string
	Total     decimal.Decimal // calculado en servidor a partir de las líneas
	Items     []*OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem es una línea de la orden. ProductID es nil si el producto fue
// retirado del catálogo después de crear la orden; ProductName conserva el
// nombre al momento de la compra.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   *string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Subtotal de la línea (cantidad por precio unitario).
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
