package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una venta registrada por un sistema externo; aquí solo se lee.
type Sale struct {
	ID          string
	TotalAmount decimal.Decimal
	SaleTime    time.Time
	Items       []SaleItem
}

// SaleItem línea de una venta.
type SaleItem struct {
	ProductID string
	Quantity  int64
}
