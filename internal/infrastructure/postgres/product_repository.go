package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Vending-api/internal/domain"
	"github.com/jhoicas/Vending-api/internal/domain/entity"
	"github.com/jhoicas/Vending-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, unit, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, product.ID, product.Name, product.Price, product.Unit, product.CreatedAt)
	if err != nil {
		return classify("product.Create", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT id, name, price, unit, created_at FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.Unit, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product.GetByID: %w", domain.ErrNotFound)
		}
		return nil, classify("product.GetByID", err)
	}
	return &p, nil
}

// Update reemplaza los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `UPDATE products SET name = $2, price = $3, unit = $4 WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, product.ID, product.Name, product.Price, product.Unit)
	if err != nil {
		return classify("product.Update", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("product.Update: %w", domain.ErrNotFound)
	}
	return nil
}

// List devuelve el catálogo ordenado por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, price, unit, created_at FROM products ORDER BY name, id`)
	if err != nil {
		return nil, classify("product.List", err)
	}
	defer rows.Close()

	list := make([]*entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Unit, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("product.List scan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina el producto. Las FK de inventory y sale_items lo rechazan si está referenciado.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return classify("product.Delete", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("product.Delete: %w", domain.ErrNotFound)
	}
	return nil
}
