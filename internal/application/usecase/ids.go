package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Vending-api/internal/domain"
)

// knownID devuelve ErrNotFound para ids que no pueden existir (no son UUID).
func knownID(op, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}
