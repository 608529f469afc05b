package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Vending-api/internal/domain/entity"
)

// StockSheet datos de la hoja de carga de una máquina.
type StockSheet struct {
	MachineID   string
	MachineName string
	GeneratedAt time.Time
	Lines       []entity.InventoryLine
	TotalQty    int64
	TotalValue  decimal.Decimal
}

// StockSheetGenerator renderiza la hoja de carga (PDF).
type StockSheetGenerator interface {
	GenerateStockSheetPDF(ctx context.Context, sheet StockSheet) ([]byte, error)
}
