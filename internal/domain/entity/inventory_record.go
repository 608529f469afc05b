package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord es la fila del ledger: una por par (máquina, producto).
// Quantity 0 es un estado válido y distinto de "sin registro".
type InventoryRecord struct {
	ID          string
	MachineID   string
	ProductID   string
	Quantity    int64
	LastRestock time.Time // solo lo actualiza el restock
}

// InventoryLine es el registro del ledger unido con nombre y precio del producto.
type InventoryLine struct {
	InventoryRecord
	ProductName string
	Price       decimal.Decimal
}

// Value devuelve cantidad × precio.
func (l InventoryLine) Value() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}
