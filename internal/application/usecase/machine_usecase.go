package usecase

import (
	"context"

	"github.com/jhoicas/Vending-api/internal/application/dto"
	"github.com/jhoicas/Vending-api/internal/domain/repository"
)

// MachineUseCase lectura del catálogo de máquinas.
type MachineUseCase struct {
	repo repository.MachineRepository
}

// NewMachineUseCase construye el caso de uso.
func NewMachineUseCase(repo repository.MachineRepository) *MachineUseCase {
	return &MachineUseCase{repo: repo}
}

// List devuelve todas las máquinas.
func (uc *MachineUseCase) List(ctx context.Context) ([]dto.MachineResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MachineResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.NewMachineResponse(m))
	}
	return out, nil
}
