package inventory

import (
	"fmt"

	"github.com/jhoicas/Vending-api/internal/domain"
)

// RemoveMode política de baja sobre un registro del ledger.
type RemoveMode int

const (
	// RemoveDelete elimina la fila; es irreversible.
	RemoveDelete RemoveMode = iota
	// RemoveDecrement resta la cantidad indicada y satura en cero; la fila se conserva.
	RemoveDecrement
)

func (m RemoveMode) String() string {
	switch m {
	case RemoveDelete:
		return "delete"
	case RemoveDecrement:
		return "decrement"
	default:
		return fmt.Sprintf("RemoveMode(%d)", int(m))
	}
}

// ValidateRestockDelta exige delta > 0. Las bajas van por Remove o SetQuantity.
func ValidateRestockDelta(delta int64) error {
	if delta <= 0 {
		return fmt.Errorf("%w: qty debe ser mayor que cero", domain.ErrInvalidInput)
	}
	return nil
}

// ValidateQuantity exige una cantidad absoluta no negativa.
func ValidateQuantity(qty int64) error {
	if qty < 0 {
		return fmt.Errorf("%w: qty no puede ser negativa", domain.ErrInvalidInput)
	}
	return nil
}

// ClampDecrement calcula max(0, current - amount).
func ClampDecrement(current, amount int64) int64 {
	if amount >= current {
		return 0
	}
	return current - amount
}

// RestockTarget es el nivel objetivo para sugerir reposición: threshold×2, mínimo 1.
func RestockTarget(threshold int64) int64 {
	if t := threshold * 2; t > 1 {
		return t
	}
	return 1
}

// SuggestedRestock unidades a cargar para llegar al objetivo; nunca negativo.
func SuggestedRestock(qty, threshold int64) int64 {
	if s := RestockTarget(threshold) - qty; s > 0 {
		return s
	}
	return 0
}
