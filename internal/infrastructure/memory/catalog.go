package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/jhoicas/Vending-api/internal/domain"
	"github.com/jhoicas/Vending-api/internal/domain/entity"
	"github.com/jhoicas/Vending-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.MachineRepository = (*MachineRepo)(nil)
)

// ProductRepo productos en memoria.
type ProductRepo struct{ s *Store }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; ok {
		return domain.NewConstraintError(`duplicate key value violates unique constraint "products_pkey"`)
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, notFound("product.GetByID")
	}
	return &p, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.products[p.ID]
	if !ok {
		return notFound("product.Update")
	}
	cur.Name, cur.Price, cur.Unit = p.Name, p.Price, p.Unit
	r.s.products[p.ID] = cur
	return nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		list = append(list, &p)
	}
	slices.SortFunc(list, func(a, b *entity.Product) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return list, nil
}

// Delete rechaza el borrado si el producto sigue referenciado, igual que las FK del esquema.
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return notFound("product.Delete")
	}
	for _, rec := range r.s.inventory {
		if rec.ProductID == id {
			return referencedError("inventory", "inventory_product_id_fkey", id)
		}
	}
	for _, sale := range r.s.sales {
		for _, it := range sale.Items {
			if it.ProductID == id {
				return referencedError("sale_items", "sale_items_product_id_fkey", id)
			}
		}
	}
	delete(r.s.products, id)
	return nil
}

func referencedError(table, constraint, id string) error {
	return domain.NewConstraintError(fmt.Sprintf(
		"update or delete on table \"products\" violates foreign key constraint %q on table %q: Key (id)=(%s) is still referenced from table %q.",
		constraint, table, id, table))
}

// MachineRepo máquinas en memoria.
type MachineRepo struct{ s *Store }

func (r *MachineRepo) Create(_ context.Context, m *entity.Machine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.machines[m.ID]; ok {
		return domain.NewConstraintError(`duplicate key value violates unique constraint "machines_pkey"`)
	}
	r.s.machines[m.ID] = *m
	return nil
}

func (r *MachineRepo) GetByID(_ context.Context, id string) (*entity.Machine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.machines[id]
	if !ok {
		return nil, notFound("machine.GetByID")
	}
	return &m, nil
}

func (r *MachineRepo) List(_ context.Context) ([]*entity.Machine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Machine, 0, len(r.s.machines))
	for _, m := range r.s.machines {
		list = append(list, &m)
	}
	slices.SortFunc(list, func(a, b *entity.Machine) int {
		return cmp.Or(
			cmp.Compare(a.Location, b.Location),
			cmp.Compare(a.Description, b.Description),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return list, nil
}
