package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/Vending-api/internal/application/inventory"
	"github.com/jhoicas/Vending-api/internal/domain/entity"
)

func TestGenerateStockSheetPDF(t *testing.T) {
	sheet := appinventory.StockSheet{
		MachineID:   "9f1c2b52-1a61-4c44-8d3f-2f7f1f1f1f1f",
		MachineName: "Lobby",
		GeneratedAt: time.Date(2026, 5, 20, 9, 30, 0, 0, time.UTC),
		Lines: []entity.InventoryLine{
			{InventoryRecord: entity.InventoryRecord{Quantity: 4}, ProductName: "Agua", Price: decimal.RequireFromString("1.25")},
		},
		TotalQty:   4,
		TotalValue: decimal.NewFromInt(5),
	}

	out, err := NewMarotoStockSheetGenerator().GenerateStockSheetPDF(context.Background(), sheet)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateStockSheetPDF_SinLineas(t *testing.T) {
	out, err := NewMarotoStockSheetGenerator().GenerateStockSheetPDF(context.Background(), appinventory.StockSheet{
		MachineID: "m", MachineName: "Machine m", TotalValue: decimal.Zero,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
