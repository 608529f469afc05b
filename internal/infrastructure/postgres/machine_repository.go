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

var _ repository.MachineRepository = (*MachineRepo)(nil)

// MachineRepo implementación de MachineRepository sobre PostgreSQL.
type MachineRepo struct {
	q Querier
}

// NewMachineRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMachineRepository(q Querier) *MachineRepo {
	return &MachineRepo{q: q}
}

// Create registra una máquina (solo desde el CLI de carga).
func (r *MachineRepo) Create(ctx context.Context, m *entity.Machine) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO machines (id, location, description) VALUES ($1, $2, $3)`,
		m.ID, m.Location, m.Description,
	)
	if err != nil {
		return classify("machine.Create", err)
	}
	return nil
}

// GetByID obtiene una máquina por ID.
func (r *MachineRepo) GetByID(ctx context.Context, id string) (*entity.Machine, error) {
	var m entity.Machine
	err := r.q.QueryRow(ctx, `SELECT id, location, description FROM machines WHERE id = $1`, id).
		Scan(&m.ID, &m.Location, &m.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("machine.GetByID: %w", domain.ErrNotFound)
		}
		return nil, classify("machine.GetByID", err)
	}
	return &m, nil
}

// List devuelve todas las máquinas.
func (r *MachineRepo) List(ctx context.Context) ([]*entity.Machine, error) {
	rows, err := r.q.Query(ctx, `SELECT id, location, description FROM machines ORDER BY location, description, id`)
	if err != nil {
		return nil, classify("machine.List", err)
	}
	defer rows.Close()

	list := make([]*entity.Machine, 0)
	for rows.Next() {
		var m entity.Machine
		if err := rows.Scan(&m.ID, &m.Location, &m.Description); err != nil {
			return nil, fmt.Errorf("machine.List scan: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
