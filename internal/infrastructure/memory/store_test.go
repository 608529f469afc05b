package memory

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vending-api/internal/domain"
	"github.com/jhoicas/Vending-api/internal/domain/entity"
	"github.com/jhoicas/Vending-api/internal/domain/repository"
)

func newFixture(t *testing.T) (*Store, entity.Machine, entity.Product) {
	t.Helper()
	s := New()
	m := entity.Machine{ID: "m1", Location: "Lobby"}
	p := entity.Product{ID: "p1", Name: "Agua", Price: decimal.RequireFromString("1.50"), Unit: "pcs"}
	require.NoError(t, s.Machines().Create(context.Background(), &m))
	require.NoError(t, s.Products().Create(context.Background(), &p))
	return s, m, p
}

func TestRestock_EsAditivoYUnicoPorPar(t *testing.T) {
	s, m, p := newFixture(t)
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := t0
	s.WithClock(func() time.Time { return clock })

	require.NoError(t, s.Inventory().Restock(ctx, "i1", m.ID, p.ID, 5))
	clock = t0.Add(time.Hour)
	require.NoError(t, s.Inventory().Restock(ctx, "i2", m.ID, p.ID, 3))

	lines, err := s.Inventory().ListByMachine(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "i1", lines[0].ID)
	assert.Equal(t, int64(8), lines[0].Quantity)
	assert.Equal(t, clock, lines[0].LastRestock)
}

func TestRestock_DesbordeEsEntradaInvalidaSinMutar(t *testing.T) {
	s, m, p := newFixture(t)
	ctx := context.Background()
	require.NoError(t, s.Inventory().Restock(ctx, "i1", m.ID, p.ID, 5))

	err := s.Inventory().Restock(ctx, "i2", m.ID, p.ID, math.MaxInt64)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrConstraintViolation)

	lines, err := s.Inventory().ListByMachine(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(5), lines[0].Quantity)
}

func TestRestock_Concurrente(t *testing.T) {
	s, m, p := newFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Inventory().Restock(ctx, "id-"+time.Now().String(), m.ID, p.ID, 2)
		}()
	}
	wg.Wait()

	lines, err := s.Inventory().ListByMachine(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(100), lines[0].Quantity)
}

func TestRestock_MaquinaInexistente(t *testing.T) {
	s, _, p := newFixture(t)
	err := s.Inventory().Restock(context.Background(), "i1", "no-existe", p.ID, 1)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestSetQuantity_NoTocaLastRestock(t *testing.T) {
	s, m, p := newFixture(t)
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.WithClock(func() time.Time { return t0 })
	require.NoError(t, s.Inventory().Restock(ctx, "i1", m.ID, p.ID, 5))

	s.WithClock(func() time.Time { return t0.Add(24 * time.Hour) })
	line, err := s.Inventory().SetQuantity(ctx, "i1", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), line.Quantity)
	assert.Equal(t, t0, line.LastRestock)
	assert.Equal(t, "Agua", line.ProductName)

	_, err = s.Inventory().SetQuantity(ctx, "nada", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDecrement_SaturaEnCeroYConservaFila(t *testing.T) {
	s, m, p := newFixture(t)
	ctx := context.Background()
	require.NoError(t, s.Inventory().Restock(ctx, "i1", m.ID, p.ID, 10))

	line, err := s.Inventory().Decrement(ctx, "i1", 15)
	require.NoError(t, err)
	assert.Equal(t, int64(0), line.Quantity)

	lines, err := s.Inventory().ListByMachine(ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestDelete_QuitaLaFilaYLiberaElPar(t *testing.T) {
	s, m, p := newFixture(t)
	ctx := context.Background()
	require.NoError(t, s.Inventory().Restock(ctx, "i1", m.ID, p.ID, 10))
	require.NoError(t, s.Inventory().Delete(ctx, "i1"))

	lines, err := s.Inventory().ListByMachine(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.NotNil(t, lines)

	require.NoError(t, s.Inventory().Restock(ctx, "i2", m.ID, p.ID, 1))
	lines, _ = s.Inventory().ListByMachine(ctx, m.ID)
	require.Len(t, lines, 1)
	assert.Equal(t, "i2", lines[0].ID)

	assert.ErrorIs(t, s.Inventory().Delete(ctx, "i1"), domain.ErrNotFound)
}

func TestProductDelete_ReferenciadoEsRechazado(t *testing.T) {
	s, m, p := newFixture(t)
	ctx := context.Background()
	require.NoError(t, s.Inventory().Restock(ctx, "i1", m.ID, p.ID, 1))

	err := s.Products().Delete(ctx, p.ID)
	var ce *domain.ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Contains(t, ce.Reason, "violates foreign key constraint")

	require.NoError(t, s.Inventory().Delete(ctx, "i1"))
	require.NoError(t, s.AddSale(ctx, entity.Sale{ID: "s1", TotalAmount: p.Price, Items: []entity.SaleItem{{ProductID: p.ID, Quantity: 1}}}))
	assert.ErrorIs(t, s.Products().Delete(ctx, p.ID), domain.ErrConstraintViolation)
}

func TestAnalytics_SinDatosDevuelveCeros(t *testing.T) {
	a := New().Analytics()
	ctx := context.Background()

	qty, value, err := a.GetStockTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), qty)
	assert.True(t, value.IsZero())

	revenue, count, err := a.GetSalesTotals(ctx)
	require.NoError(t, err)
	assert.True(t, revenue.IsZero())
	assert.Equal(t, int64(0), count)

	top, err := a.GetTopProducts(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestAnalytics_DistribucionIncluyeMaquinasVacias(t *testing.T) {
	s, m, p := newFixture(t)
	ctx := context.Background()
	require.NoError(t, s.Machines().Create(ctx, &entity.Machine{ID: "m2"}))
	require.NoError(t, s.Inventory().Restock(ctx, "i1", m.ID, p.ID, 4))

	dist, err := s.Analytics().GetMachineDistribution(ctx)
	require.NoError(t, err)
	require.Len(t, dist, 2)
	assert.Equal(t, "m1", dist[0].MachineID)
	assert.Equal(t, int64(4), dist[0].TotalQty)
	assert.True(t, dist[0].TotalValue.Equal(decimal.RequireFromString("6")))
	assert.Equal(t, "m2", dist[1].MachineID)
	assert.Equal(t, int64(0), dist[1].TotalQty)
	assert.True(t, dist[1].TotalValue.IsZero())
}

func TestAnalytics_TopProductsYTendencia(t *testing.T) {
	s, _, p := newFixture(t)
	ctx := context.Background()
	p2 := entity.Product{ID: "p2", Name: "Chocolate", Price: decimal.NewFromInt(2)}
	p3 := entity.Product{ID: "p3", Name: "Sin ventas", Price: decimal.NewFromInt(2)}
	require.NoError(t, s.Products().Create(ctx, &p2))
	require.NoError(t, s.Products().Create(ctx, &p3))

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	sales := []entity.Sale{
		{ID: "s1", TotalAmount: decimal.NewFromInt(3), SaleTime: now.AddDate(0, 0, -1), Items: []entity.SaleItem{{ProductID: p.ID, Quantity: 2}}},
		{ID: "s2", TotalAmount: decimal.NewFromInt(4), SaleTime: now.AddDate(0, 0, -1).Add(time.Hour), Items: []entity.SaleItem{{ProductID: p2.ID, Quantity: 5}}},
		{ID: "s3", TotalAmount: decimal.NewFromInt(1), SaleTime: now.AddDate(0, 0, -3), Items: []entity.SaleItem{{ProductID: p.ID, Quantity: 1}}},
		{ID: "s4", TotalAmount: decimal.NewFromInt(9), SaleTime: now.AddDate(0, 0, -20), Items: []entity.SaleItem{{ProductID: p.ID, Quantity: 1}}},
	}
	for _, sale := range sales {
		require.NoError(t, s.AddSale(ctx, sale))
	}

	top, err := s.Analytics().GetTopProducts(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []repository.TopProductResult{
		{ProductID: "p2", ProductName: "Chocolate", TotalSold: 5},
		{ProductID: "p1", ProductName: "Agua", TotalSold: 4},
	}, top)

	top, err = s.Analytics().GetTopProducts(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)

	trend, err := s.Analytics().GetRevenueTrend(ctx, now.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, trend, 2, "serie dispersa: solo días con ventas")
	assert.Equal(t, "2026-03-07", trend[0].Day.Format(time.DateOnly))
	assert.True(t, trend[0].Revenue.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "2026-03-09", trend[1].Day.Format(time.DateOnly))
	assert.True(t, trend[1].Revenue.Equal(decimal.NewFromInt(7)))
}

func TestRunCatalog_RestauraSiFalla(t *testing.T) {
	s := New()
	ctx := context.Background()
	boom := errors.New("fila inválida")

	err := s.RunCatalog(ctx, func(products repository.ProductRepository, machines repository.MachineRepository) error {
		require.NoError(t, machines.Create(ctx, &entity.Machine{ID: "m1"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := s.Machines().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRunCatalog_EsperaAEscriturasDuranteLaCarga(t *testing.T) {
	s, m, p := newFixture(t)
	ctx := context.Background()
	inside := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- s.RunCatalog(ctx, func(_ repository.ProductRepository, _ repository.MachineRepository) error {
			close(inside)
			<-release
			return errors.New("fila inválida")
		})
	}()
	<-inside

	restocked := make(chan error, 1)
	go func() { restocked <- s.Inventory().Restock(ctx, "i1", m.ID, p.ID, 3) }()
	select {
	case <-restocked:
		t.Fatal("el restock no debe completarse mientras la carga está en curso")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	assert.Error(t, <-done)
	require.NoError(t, <-restocked)

	lines, err := s.Inventory().ListByMachine(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(3), lines[0].Quantity, "el rollback de la carga no borra el restock")
}
