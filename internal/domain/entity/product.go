package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	IsActive    bool // false = retirado del catálogo (borrado suave)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
