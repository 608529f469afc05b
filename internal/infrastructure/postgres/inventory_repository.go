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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo ledger de inventario por (máquina, producto) sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const lineColumns = `u.id, u.machine_id, u.product_id, u.quantity, u.last_restock, p.name, p.price`

// Restock suma delta dentro del motor: dos restocks concurrentes del mismo par no pierden unidades.
func (r *InventoryRepo) Restock(ctx context.Context, newID, machineID, productID string, delta int64) error {
	query := `
		INSERT INTO inventory (id, machine_id, product_id, quantity, last_restock)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (machine_id, product_id)
		DO UPDATE SET quantity = inventory.quantity + EXCLUDED.quantity, last_restock = now()`
	if _, err := r.q.Exec(ctx, query, newID, machineID, productID, delta); err != nil {
		return classify("inventory.Restock", err)
	}
	return nil
}

// SetQuantity sobrescribe la cantidad; last_restock no cambia.
func (r *InventoryRepo) SetQuantity(ctx context.Context, invID string, qty int64) (*entity.InventoryLine, error) {
	query := `
		WITH u AS (
			UPDATE inventory SET quantity = $2 WHERE id = $1
			RETURNING id, machine_id, product_id, quantity, last_restock
		)
		SELECT ` + lineColumns + ` FROM u JOIN products p ON p.id = u.product_id`
	return r.updateReturning(ctx, "inventory.SetQuantity", query, invID, qty)
}

// Decrement resta amount saturando en cero; la fila se conserva aunque quede en 0.
func (r *InventoryRepo) Decrement(ctx context.Context, invID string, amount int64) (*entity.InventoryLine, error) {
	query := `
		WITH u AS (
			UPDATE inventory SET quantity = GREATEST(quantity - $2, 0) WHERE id = $1
			RETURNING id, machine_id, product_id, quantity, last_restock
		)
		SELECT ` + lineColumns + ` FROM u JOIN products p ON p.id = u.product_id`
	return r.updateReturning(ctx, "inventory.Decrement", query, invID, amount)
}

func (r *InventoryRepo) updateReturning(ctx context.Context, op, query string, invID string, n int64) (*entity.InventoryLine, error) {
	line, err := scanLine(r.q.QueryRow(ctx, query, invID, n))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return nil, classify(op, err)
	}
	return line, nil
}

// Delete elimina la fila del ledger.
func (r *InventoryRepo) Delete(ctx context.Context, invID string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, invID)
	if err != nil {
		return classify("inventory.Delete", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("inventory.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// ListByMachine devuelve las filas de la máquina con nombre y precio del producto.
func (r *InventoryRepo) ListByMachine(ctx context.Context, machineID string) ([]entity.InventoryLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM inventory u
		JOIN products p ON p.id = u.product_id
		WHERE u.machine_id = $1
		ORDER BY p.name, u.id`
	rows, err := r.q.Query(ctx, query, machineID)
	if err != nil {
		return nil, classify("inventory.ListByMachine", err)
	}
	defer rows.Close()

	lines := make([]entity.InventoryLine, 0)
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("inventory.ListByMachine scan: %w", err)
		}
		lines = append(lines, *line)
	}
	return lines, rows.Err()
}

// ListLowStock filas con quantity <= threshold, de menor a mayor cantidad.
func (r *InventoryRepo) ListLowStock(ctx context.Context, threshold int64, machineID string) ([]repository.LowStockRow, error) {
	query := `
		SELECT ` + lineColumns + `, m.location, m.description
		FROM inventory u
		JOIN products p ON p.id = u.product_id
		JOIN machines m ON m.id = u.machine_id
		WHERE u.quantity <= $1
		  AND ($2::text = '' OR u.machine_id::text = $2::text)
		ORDER BY u.quantity ASC, p.name ASC, u.id`
	rows, err := r.q.Query(ctx, query, threshold, machineID)
	if err != nil {
		return nil, classify("inventory.ListLowStock", err)
	}
	defer rows.Close()

	out := make([]repository.LowStockRow, 0)
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(
			&row.ID, &row.MachineID, &row.ProductID, &row.Quantity, &row.LastRestock,
			&row.ProductName, &row.Price, &row.MachineLocation, &row.MachineDescription,
		); err != nil {
			return nil, fmt.Errorf("inventory.ListLowStock scan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func scanLine(row pgx.Row) (*entity.InventoryLine, error) {
	var l entity.InventoryLine
	if err := row.Scan(&l.ID, &l.MachineID, &l.ProductID, &l.Quantity, &l.LastRestock, &l.ProductName, &l.Price); err != nil {
		return nil, err
	}
	return &l, nil
}
