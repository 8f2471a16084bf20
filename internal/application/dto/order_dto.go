package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerRefInput referencia al comprador de la orden: perfil de empresa o
// de persona, discriminado por kind.
type CustomerRefInput struct {
	Kind string `json:"kind"` // "company" | "person"
	ID   string `json:"id"`
}

// OrderItemInput línea de una orden nueva. UnitPrice cero = usar el precio
// de catálogo del producto.
type OrderItemInput struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest entrada para crear una orden.
type CreateOrderRequest struct {
	Customer CustomerRefInput `json:"customer"`
	Items    []OrderItemInput `json:"items"`
}

// OrderItemResponse salida de una línea de orden.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   *string         `json:"product_id"` // null si el producto fue retirado
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderCustomerResponse comprador resuelto (lookup explícito por kind).
type OrderCustomerResponse struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID        string                `json:"id"`
	Customer  OrderCustomerResponse `json:"customer"`
	Status    string                `json:"status"`
	Total     decimal.Decimal       `json:"total"`
	Items     []OrderItemResponse   `json:"items,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}
