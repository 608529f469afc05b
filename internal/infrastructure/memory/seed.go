package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Vending-api/internal/domain/entity"
)

// NewSeeded crea un store con máquinas, productos, stock y ventas de ejemplo para el modo demo.
func NewSeeded() *Store {
	s := New()
	ctx := context.Background()
	now := time.Now().UTC()

	machines := []entity.Machine{
		{ID: uuid.NewString(), Location: "Lobby principal", Description: "Snacks y bebidas"},
		{ID: uuid.NewString(), Location: "Piso 3", Description: "Bebidas frías"},
		{ID: uuid.NewString(), Description: "Máquina de respaldo"},
	}
	for i := range machines {
		_ = s.Machines().Create(ctx, &machines[i])
	}

	products := []entity.Product{
		{ID: uuid.NewString(), Name: "Agua 600ml", Price: decimal.RequireFromString("1.20"), Unit: entity.DefaultUnit, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Barra de chocolate", Price: decimal.RequireFromString("1.75"), Unit: entity.DefaultUnit, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Papas fritas", Price: decimal.RequireFromString("1.50"), Unit: entity.DefaultUnit, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Refresco lata", Price: decimal.RequireFromString("1.35"), Unit: entity.DefaultUnit, CreatedAt: now},
	}
	for i := range products {
		_ = s.Products().Create(ctx, &products[i])
	}

	inv := s.Inventory()
	_ = inv.Restock(ctx, uuid.NewString(), machines[0].ID, products[0].ID, 24)
	_ = inv.Restock(ctx, uuid.NewString(), machines[0].ID, products[1].ID, 4)
	_ = inv.Restock(ctx, uuid.NewString(), machines[0].ID, products[2].ID, 12)
	_ = inv.Restock(ctx, uuid.NewString(), machines[1].ID, products[0].ID, 30)
	_ = inv.Restock(ctx, uuid.NewString(), machines[1].ID, products[3].ID, 2)

	for d := 0; d < 5; d++ {
		_ = s.AddSale(ctx, entity.Sale{
			ID:          uuid.NewString(),
			TotalAmount: products[0].Price.Mul(decimal.NewFromInt(int64(d + 2))),
			SaleTime:    now.AddDate(0, 0, -d),
			Items:       []entity.SaleItem{{ProductID: products[0].ID, Quantity: int64(d + 2)}},
		})
	}
	_ = s.AddSale(ctx, entity.Sale{
		ID:          uuid.NewString(),
		TotalAmount: products[1].Price.Mul(decimal.NewFromInt(3)),
		SaleTime:    now.Add(-2 * time.Hour),
		Items:       []entity.SaleItem{{ProductID: products[1].ID, Quantity: 3}},
	})
	return s
}
