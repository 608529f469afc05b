package usecase

import (
	"context"

	"github.com/jhoicas/Vending-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta fn con repositorios atados a una transacción: todo o nada.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		products repository.ProductRepository,
		machines repository.MachineRepository,
	) error) error
}
