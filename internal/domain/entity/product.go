package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultUnit unidad que se asigna cuando el producto no la informa.
const DefaultUnit = "pcs"

// Product representa un producto del catálogo que se carga en las máquinas.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal // precio de venta, nunca negativo
	Unit      string
	CreatedAt time.Time
}
