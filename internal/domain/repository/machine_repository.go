package repository

import (
	"context"

	"github.com/jhoicas/Vending-api/internal/domain/entity"
)

// MachineRepository catálogo de máquinas. La API solo lee; Create lo usa el CLI de carga.
type MachineRepository interface {
	Create(ctx context.Context, machine *entity.Machine) error
	GetByID(ctx context.Context, id string) (*entity.Machine, error)
	List(ctx context.Context) ([]*entity.Machine, error)
}
