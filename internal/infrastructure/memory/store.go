// Package memory implementa los repositorios sobre mapas protegidos por un RWMutex.
// Sirve para levantar el servicio sin PostgreSQL y para las pruebas de handlers.
// Emula las restricciones que en PostgreSQL imponen las FK, UNIQUE y CHECK del esquema.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/jhoicas/Vending-api/internal/domain"
	"github.com/jhoicas/Vending-api/internal/domain/entity"
)

type pairKey struct {
	machineID string
	productID string
}

// Store estado compartido de todos los repositorios en memoria.
type Store struct {
	mu        sync.RWMutex
	now       func() time.Time
	products  map[string]entity.Product
	machines  map[string]entity.Machine
	inventory map[string]entity.InventoryRecord
	byPair    map[pairKey]string
	sales     []entity.Sale
}

// New crea un store vacío.
func New() *Store {
	return &Store{
		now:       time.Now,
		products:  make(map[string]entity.Product),
		machines:  make(map[string]entity.Machine),
		inventory: make(map[string]entity.InventoryRecord),
		byPair:    make(map[pairKey]string),
	}
}

// WithClock reemplaza el reloj (pruebas).
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

// Products repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Machines repositorio de máquinas.
func (s *Store) Machines() *MachineRepo { return &MachineRepo{s: s} }

// Inventory repositorio del ledger.
func (s *Store) Inventory() *InventoryRepo { return &InventoryRepo{s: s} }

// Analytics repositorio de lectura del tablero.
func (s *Store) Analytics() *AnalyticsRepo { return &AnalyticsRepo{s: s} }

// AddSale registra una venta. Las ventas las crea un sistema externo; aquí solo
// existe para cargar datos de demo y de prueba.
func (s *Store) AddSale(_ context.Context, sale entity.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range sale.Items {
		if _, ok := s.products[it.ProductID]; !ok {
			return fkError("sale_items", "sale_items_product_id_fkey")
		}
		if it.Quantity <= 0 {
			return domain.NewConstraintError(`new row for relation "sale_items" violates check constraint "sale_items_quantity_check"`)
		}
	}
	if sale.SaleTime.IsZero() {
		sale.SaleTime = s.now()
	}
	sale.Items = append([]entity.SaleItem(nil), sale.Items...)
	s.sales = append(s.sales, sale)
	return nil
}

// workingCopy clona catálogo y ledger en un store aparte. Requiere s.mu tomado.
func (s *Store) workingCopy() *Store {
	return &Store{
		now:       s.now,
		products:  maps.Clone(s.products),
		machines:  maps.Clone(s.machines),
		inventory: maps.Clone(s.inventory),
		byPair:    maps.Clone(s.byPair),
		sales:     s.sales,
	}
}

// adopt publica el estado de una copia confirmada. Requiere s.mu tomado.
func (s *Store) adopt(tx *Store) {
	s.products = tx.products
	s.machines = tx.machines
	s.inventory = tx.inventory
	s.byPair = tx.byPair
}

func fkError(table, constraint string) error {
	return domain.NewConstraintError(fmt.Sprintf(
		"insert or update on table %q violates foreign key constraint %q", table, constraint))
}

func notFound(op string) error {
	return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}
