package memory

import (
	"context"

	"github.com/jhoicas/Vending-api/internal/application/usecase"
	"github.com/jhoicas/Vending-api/internal/domain/repository"
)

var _ usecase.CatalogTxRunner = (*Store)(nil)

// RunCatalog ejecuta fn sobre una copia de trabajo y solo la publica si fn no falla.
// El lock de escritura se mantiene durante toda la carga: ninguna otra escritura
// puede colarse entre la copia y la publicación.
func (s *Store) RunCatalog(ctx context.Context, fn func(
	products repository.ProductRepository,
	machines repository.MachineRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.workingCopy()
	if err := fn(tx.Products(), tx.Machines()); err != nil {
		return err
	}
	s.adopt(tx)
	return nil
}
