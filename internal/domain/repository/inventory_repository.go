package repository

import (
	"context"

	"github.com/jhoicas/Vending-api/internal/domain/entity"
)

// LowStockRow fila del ledger por debajo del umbral, con los datos de la máquina.
type LowStockRow struct {
	entity.InventoryLine
	MachineLocation    string
	MachineDescription string
}

// InventoryRepository es el ledger por (máquina, producto).
type InventoryRepository interface {
	// Restock suma delta en una sola sentencia atómica. Si el par no existe crea la fila
	// con newID y quantity = delta. En ambos casos refresca last_restock.
	Restock(ctx context.Context, newID, machineID, productID string, delta int64) error
	// SetQuantity sobrescribe la cantidad sin tocar last_restock.
	SetQuantity(ctx context.Context, invID string, qty int64) (*entity.InventoryLine, error)
	// Decrement aplica max(0, quantity - amount) en una sola sentencia y conserva la fila.
	Decrement(ctx context.Context, invID string, amount int64) (*entity.InventoryLine, error)
	Delete(ctx context.Context, invID string) error
	// ListByMachine ordena por nombre de producto; slice vacío si no hay filas.
	ListByMachine(ctx context.Context, machineID string) ([]entity.InventoryLine, error)
	// ListLowStock filas con quantity <= threshold; machineID vacío = todas las máquinas.
	ListLowStock(ctx context.Context, threshold int64, machineID string) ([]LowStockRow, error)
}
