package repository

import (
	"context"

	"github.com/jhoicas/Vending-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Update reemplaza name, price y unit. domain.ErrNotFound si el id no existe.
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	// Delete falla con *domain.ConstraintError si hay filas del ledger o ventas que lo referencian.
	Delete(ctx context.Context, id string) error
}
