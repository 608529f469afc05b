package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Vending-api/internal/application/dto"
	"github.com/jhoicas/Vending-api/internal/domain"
	"github.com/jhoicas/Vending-api/internal/domain/entity"
	rules "github.com/jhoicas/Vending-api/internal/domain/inventory"
	"github.com/jhoicas/Vending-api/internal/domain/repository"
)

// DefaultLowStockThreshold umbral cuando el cliente no lo envía.
const DefaultLowStockThreshold = 5

// LowStockUseCase lista de reposición: filas del ledger en o bajo el umbral.
type LowStockUseCase struct {
	repo repository.InventoryRepository
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(repo repository.InventoryRepository) *LowStockUseCase {
	return &LowStockUseCase{repo: repo}
}

// List devuelve las filas con qty <= threshold (de menor a mayor) y la reposición
// sugerida para llevar cada una a threshold×2. machineID vacío = todas las máquinas.
func (uc *LowStockUseCase) List(ctx context.Context, threshold int64, machineID string) (*dto.LowStockResponse, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("%w: threshold no puede ser negativo", domain.ErrInvalidInput)
	}
	if machineID != "" {
		if _, err := uuid.Parse(machineID); err != nil {
			return nil, fmt.Errorf("%w: machine_id no es un UUID válido", domain.ErrInvalidInput)
		}
	}

	rows, err := uc.repo.ListLowStock(ctx, threshold, machineID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LowStockItemDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.LowStockItemDTO{
			InvID:            r.ID,
			MachineID:        r.MachineID,
			MachineName:      entity.MachineDisplayName(r.MachineID, r.MachineLocation, r.MachineDescription),
			ProductID:        r.ProductID,
			ProductName:      r.ProductName,
			Price:            r.Price,
			Qty:              r.Quantity,
			SuggestedRestock: rules.SuggestedRestock(r.Quantity, threshold),
		})
	}
	return &dto.LowStockResponse{Threshold: threshold, Total: len(items), Items: items}, nil
}
