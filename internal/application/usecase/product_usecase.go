package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Vending-api/internal/application/dto"
	"github.com/jhoicas/Vending-api/internal/domain/entity"
	"github.com/jhoicas/Vending-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Precio 0 es válido; precio ausente no.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.CreateProductResponse, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Price:     *in.Price,
		Unit:      in.Unit,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return &dto.CreateProductResponse{Message: "Producto creado", ProductID: product.ID}, nil
}

// Update reemplaza name, price y unit.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) error {
	if err := in.Normalize(); err != nil {
		return err
	}
	if err := knownID("product.Update", id); err != nil {
		return err
	}
	return uc.repo.Update(ctx, &entity.Product{ID: id, Name: in.Name, Price: *in.Price, Unit: in.Unit})
}

// Delete elimina el producto; si está referenciado el almacenamiento lo rechaza.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := knownID("product.Delete", id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.NewProductResponse(p))
	}
	return out, nil
}
