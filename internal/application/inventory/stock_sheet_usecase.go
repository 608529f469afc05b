package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Vending-api/internal/domain"
	"github.com/jhoicas/Vending-api/internal/domain/repository"
)

// StockSheetUseCase genera la hoja de carga en PDF de una máquina.
type StockSheetUseCase struct {
	machines  repository.MachineRepository
	inventory repository.InventoryRepository
	generator StockSheetGenerator
	now       func() time.Time
}

// NewStockSheetUseCase construye el caso de uso.
func NewStockSheetUseCase(
	machines repository.MachineRepository,
	inventory repository.InventoryRepository,
	generator StockSheetGenerator,
) *StockSheetUseCase {
	return &StockSheetUseCase{machines: machines, inventory: inventory, generator: generator, now: time.Now}
}

// Generate devuelve el PDF y el nombre de archivo sugerido. Máquina desconocida = ErrNotFound.
func (uc *StockSheetUseCase) Generate(ctx context.Context, machineID string) ([]byte, string, error) {
	if _, err := uuid.Parse(machineID); err != nil {
		return nil, "", fmt.Errorf("stocksheet: %w", domain.ErrNotFound)
	}
	machine, err := uc.machines.GetByID(ctx, machineID)
	if err != nil {
		return nil, "", err
	}
	lines, err := uc.inventory.ListByMachine(ctx, machineID)
	if err != nil {
		return nil, "", err
	}

	sheet := StockSheet{
		MachineID:   machine.ID,
		MachineName: machine.DisplayName(),
		GeneratedAt: uc.now(),
		Lines:       lines,
		TotalValue:  decimal.Zero,
	}
	for _, l := range lines {
		sheet.TotalQty += l.Quantity
		sheet.TotalValue = sheet.TotalValue.Add(l.Value())
	}

	pdf, err := uc.generator.GenerateStockSheetPDF(ctx, sheet)
	if err != nil {
		return nil, "", fmt.Errorf("stocksheet: %w", err)
	}
	filename := fmt.Sprintf("stock-%s-%s.pdf", machine.ID, sheet.GeneratedAt.Format("20060102"))
	return pdf, filename, nil
}
