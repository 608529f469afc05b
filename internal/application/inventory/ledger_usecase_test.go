package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vending-api/internal/application/inventory"
	"github.com/jhoicas/Vending-api/internal/domain"
	"github.com/jhoicas/Vending-api/internal/domain/entity"
	rules "github.com/jhoicas/Vending-api/internal/domain/inventory"
	"github.com/jhoicas/Vending-api/internal/infrastructure/memory"
)

type fixture struct {
	store   *memory.Store
	ledger  *inventory.LedgerUseCase
	machine entity.Machine
	product entity.Product
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := memory.New()
	ctx := context.Background()
	m := entity.Machine{ID: uuid.NewString(), Location: "Lobby"}
	p := entity.Product{ID: uuid.NewString(), Name: "Agua", Price: decimal.RequireFromString("1.25"), Unit: "pcs"}
	require.NoError(t, store.Machines().Create(ctx, &m))
	require.NoError(t, store.Products().Create(ctx, &p))
	return fixture{store: store, ledger: inventory.NewLedgerUseCase(store.Inventory()), machine: m, product: p}
}

func (f fixture) only(t *testing.T) string {
	t.Helper()
	lines, err := f.ledger.List(context.Background(), f.machine.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	return lines[0].InvID
}

func TestRestock_CincoMasTresEsOcho(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.ledger.Restock(ctx, f.machine.ID, f.product.ID, 5))
	require.NoError(t, f.ledger.Restock(ctx, f.machine.ID, f.product.ID, 3))

	lines, err := f.ledger.List(ctx, f.machine.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(8), lines[0].Qty)
	assert.Equal(t, "Agua", lines[0].ProductName)
}

func TestRestock_RechazaDeltaNoPositivo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.ledger.Restock(ctx, f.machine.ID, f.product.ID, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.ledger.Restock(ctx, f.machine.ID, f.product.ID, -2), domain.ErrInvalidInput)

	lines, err := f.ledger.List(ctx, f.machine.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRestock_CamposObligatorios(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.ledger.Restock(ctx, "", f.product.ID, 1), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.ledger.Restock(ctx, f.machine.ID, "abc", 1), domain.ErrInvalidInput)
}

func TestRestock_ProductoInexistenteEsRechazoDeIntegridad(t *testing.T) {
	f := newFixture(t)
	err := f.ledger.Restock(context.Background(), f.machine.ID, uuid.NewString(), 1)

	var ce *domain.ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Contains(t, ce.Reason, "foreign key")
}

func TestSetQuantity_NegativoSeRechazaSinMutar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.ledger.Restock(ctx, f.machine.ID, f.product.ID, 4))
	id := f.only(t)

	_, err := f.ledger.SetQuantity(ctx, id, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := f.ledger.SetQuantity(ctx, id, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), out.Qty)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("1.25")))

	_, err = f.ledger.SetQuantity(ctx, uuid.NewString(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemove_DecrementoSaturaYConservaFila(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.ledger.Restock(ctx, f.machine.ID, f.product.ID, 10))
	id := f.only(t)

	out, err := f.ledger.Remove(ctx, id, rules.RemoveDecrement, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Qty)
	assert.Equal(t, id, f.only(t))

	_, err = f.ledger.Remove(ctx, id, rules.RemoveDecrement, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRemove_DeleteQuitaDelListado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.ledger.Restock(ctx, f.machine.ID, f.product.ID, 10))
	id := f.only(t)

	out, err := f.ledger.Remove(ctx, id, rules.RemoveDelete, 0)
	require.NoError(t, err)
	assert.Nil(t, out)

	lines, err := f.ledger.List(ctx, f.machine.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = f.ledger.Remove(ctx, id, rules.RemoveDelete, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_MaquinaDesconocidaEsListaVacia(t *testing.T) {
	f := newFixture(t)
	for _, id := range []string{uuid.NewString(), "no-es-uuid"} {
		lines, err := f.ledger.List(context.Background(), id)
		require.NoError(t, err)
		assert.NotNil(t, lines)
		assert.Empty(t, lines)
	}
}

func TestLowStock_OrdenYSugerencia(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p2 := entity.Product{ID: uuid.NewString(), Name: "Barra", Price: decimal.NewFromInt(2)}
	p3 := entity.Product{ID: uuid.NewString(), Name: "Chicle", Price: decimal.NewFromInt(1)}
	require.NoError(t, f.store.Products().Create(ctx, &p2))
	require.NoError(t, f.store.Products().Create(ctx, &p3))
	require.NoError(t, f.ledger.Restock(ctx, f.machine.ID, f.product.ID, 3))
	require.NoError(t, f.ledger.Restock(ctx, f.machine.ID, p2.ID, 3))
	require.NoError(t, f.ledger.Restock(ctx, f.machine.ID, p3.ID, 20))

	out, err := inventory.NewLowStockUseCase(f.store.Inventory()).List(ctx, inventory.DefaultLowStockThreshold, "")
	require.NoError(t, err)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, "Agua", out.Items[0].ProductName)
	assert.Equal(t, "Barra", out.Items[1].ProductName)
	assert.Equal(t, int64(7), out.Items[0].SuggestedRestock)
	assert.Equal(t, "Lobby", out.Items[0].MachineName)

	_, err = inventory.NewLowStockUseCase(f.store.Inventory()).List(ctx, -1, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

type fakeSheetGenerator struct {
	got inventory.StockSheet
}

func (g *fakeSheetGenerator) GenerateStockSheetPDF(_ context.Context, sheet inventory.StockSheet) ([]byte, error) {
	g.got = sheet
	return []byte("%PDF-fake"), nil
}

func TestStockSheet_TotalesYMaquinaDesconocida(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.ledger.Restock(ctx, f.machine.ID, f.product.ID, 4))

	gen := &fakeSheetGenerator{}
	uc := inventory.NewStockSheetUseCase(f.store.Machines(), f.store.Inventory(), gen)

	pdf, name, err := uc.Generate(ctx, f.machine.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Contains(t, name, f.machine.ID)
	assert.Equal(t, "Lobby", gen.got.MachineName)
	assert.Equal(t, int64(4), gen.got.TotalQty)
	assert.True(t, gen.got.TotalValue.Equal(decimal.NewFromInt(5)))

	_, _, err = uc.Generate(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
