package memory

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/jhoicas/Vending-api/internal/domain"
	"github.com/jhoicas/Vending-api/internal/domain/entity"
	"github.com/jhoicas/Vending-api/internal/domain/inventory"
	"github.com/jhoicas/Vending-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo ledger en memoria. Cada operación toma el lock de escritura completo,
// así que dos restocks del mismo par se serializan sin perder unidades.
type InventoryRepo struct{ s *Store }

func (r *InventoryRepo) Restock(_ context.Context, newID, machineID, productID string, delta int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.machines[machineID]; !ok {
		return fkError("inventory", "inventory_machine_id_fkey")
	}
	if _, ok := r.s.products[productID]; !ok {
		return fkError("inventory", "inventory_product_id_fkey")
	}

	key := pairKey{machineID: machineID, productID: productID}
	now := r.s.now()
	if id, ok := r.s.byPair[key]; ok {
		rec := r.s.inventory[id]
		if delta > 0 && rec.Quantity > math.MaxInt64-delta {
			return outOfRangeError("inventory.Restock")
		}
		if rec.Quantity+delta < 0 {
			return checkError()
		}
		rec.Quantity += delta
		rec.LastRestock = now
		r.s.inventory[id] = rec
		return nil
	}

	if delta < 0 {
		return checkError()
	}
	if _, ok := r.s.inventory[newID]; ok {
		return domain.NewConstraintError(`duplicate key value violates unique constraint "inventory_pkey"`)
	}
	r.s.inventory[newID] = entity.InventoryRecord{
		ID:          newID,
		MachineID:   machineID,
		ProductID:   productID,
		Quantity:    delta,
		LastRestock: now,
	}
	r.s.byPair[key] = newID
	return nil
}

func (r *InventoryRepo) SetQuantity(_ context.Context, invID string, qty int64) (*entity.InventoryLine, error) {
	return r.update("inventory.SetQuantity", invID, func(int64) int64 { return qty })
}

func (r *InventoryRepo) Decrement(_ context.Context, invID string, amount int64) (*entity.InventoryLine, error) {
	return r.update("inventory.Decrement", invID, func(cur int64) int64 {
		return inventory.ClampDecrement(cur, amount)
	})
}

func (r *InventoryRepo) update(op, invID string, next func(int64) int64) (*entity.InventoryLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.inventory[invID]
	if !ok {
		return nil, notFound(op)
	}
	q := next(rec.Quantity)
	if q < 0 {
		return nil, checkError()
	}
	rec.Quantity = q
	r.s.inventory[invID] = rec

	line := r.s.lineLocked(rec)
	return &line, nil
}

func (r *InventoryRepo) Delete(_ context.Context, invID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.inventory[invID]
	if !ok {
		return notFound("inventory.Delete")
	}
	delete(r.s.inventory, invID)
	delete(r.s.byPair, pairKey{machineID: rec.MachineID, productID: rec.ProductID})
	return nil
}

func (r *InventoryRepo) ListByMachine(_ context.Context, machineID string) ([]entity.InventoryLine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	lines := make([]entity.InventoryLine, 0)
	for _, rec := range r.s.inventory {
		if rec.MachineID == machineID {
			lines = append(lines, r.s.lineLocked(rec))
		}
	}
	slices.SortFunc(lines, func(a, b entity.InventoryLine) int {
		return cmp.Or(cmp.Compare(a.ProductName, b.ProductName), cmp.Compare(a.ID, b.ID))
	})
	return lines, nil
}

func (r *InventoryRepo) ListLowStock(_ context.Context, threshold int64, machineID string) ([]repository.LowStockRow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]repository.LowStockRow, 0)
	for _, rec := range r.s.inventory {
		if rec.Quantity > threshold || (machineID != "" && rec.MachineID != machineID) {
			continue
		}
		m := r.s.machines[rec.MachineID]
		out = append(out, repository.LowStockRow{
			InventoryLine:      r.s.lineLocked(rec),
			MachineLocation:    m.Location,
			MachineDescription: m.Description,
		})
	}
	slices.SortFunc(out, func(a, b repository.LowStockRow) int {
		return cmp.Or(
			cmp.Compare(a.Quantity, b.Quantity),
			cmp.Compare(a.ProductName, b.ProductName),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return out, nil
}

// lineLocked une el registro con su producto. Requiere el lock tomado.
func (s *Store) lineLocked(rec entity.InventoryRecord) entity.InventoryLine {
	p := s.products[rec.ProductID]
	return entity.InventoryLine{InventoryRecord: rec, ProductName: p.Name, Price: p.Price}
}

func checkError() error {
	return domain.NewConstraintError(`new row for relation "inventory" violates check constraint "inventory_quantity_check"`)
}

// outOfRangeError equivale al 22003 de PostgreSQL: la suma no cabe en BIGINT.
func outOfRangeError(op string) error {
	return fmt.Errorf("%s: %w: bigint fuera de rango", op, domain.ErrInvalidInput)
}
