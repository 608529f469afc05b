package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vending-api/internal/application/dto"
	"github.com/jhoicas/Vending-api/internal/application/usecase"
	"github.com/jhoicas/Vending-api/internal/domain"
	"github.com/jhoicas/Vending-api/internal/domain/entity"
	"github.com/jhoicas/Vending-api/internal/infrastructure/memory"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestProductUseCase_CreatePrecioCeroEsValido(t *testing.T) {
	store := memory.New()
	uc := usecase.NewProductUseCase(store.Products())
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.ProductRequest{Name: "Muestra gratis", Price: price("0")})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ProductID)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "pcs", list[0].Unit)
	assert.True(t, list[0].Price.IsZero())
}

func TestProductUseCase_CreateSinPrecioFalla(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.New().Products())
	_, err := uc.Create(context.Background(), dto.ProductRequest{Name: "Agua"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_UpdateYDelete(t *testing.T) {
	store := memory.New()
	uc := usecase.NewProductUseCase(store.Products())
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.ProductRequest{Name: "Agua", Price: price("1.00")})
	require.NoError(t, err)

	require.NoError(t, uc.Update(ctx, out.ProductID, dto.ProductRequest{Name: "Agua grande", Price: price("1.80"), Unit: "botella"}))
	p, err := store.Products().GetByID(ctx, out.ProductID)
	require.NoError(t, err)
	assert.Equal(t, "Agua grande", p.Name)
	assert.Equal(t, "botella", p.Unit)

	assert.ErrorIs(t, uc.Update(ctx, uuid.NewString(), dto.ProductRequest{Name: "x", Price: price("1")}), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "no-es-uuid"), domain.ErrNotFound)
	require.NoError(t, uc.Delete(ctx, out.ProductID))
}

func TestProductUseCase_DeleteReferenciadoDevuelveRechazo(t *testing.T) {
	store := memory.New()
	uc := usecase.NewProductUseCase(store.Products())
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.ProductRequest{Name: "Agua", Price: price("1")})
	require.NoError(t, err)
	m := entity.Machine{ID: uuid.NewString()}
	require.NoError(t, store.Machines().Create(ctx, &m))
	require.NoError(t, store.Inventory().Restock(ctx, uuid.NewString(), m.ID, out.ProductID, 3))

	err = uc.Delete(ctx, out.ProductID)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestMachineUseCase_List(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	require.NoError(t, store.Machines().Create(ctx, &entity.Machine{ID: uuid.NewString(), Location: "Lobby"}))

	list, err := usecase.NewMachineUseCase(store.Machines()).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Lobby", list[0].Location)
}

func TestCatalogImport_Maquinas(t *testing.T) {
	store := memory.New()
	uc := usecase.NewCatalogImportUseCase(store)
	id := uuid.NewString()
	csv := "id,location,description\n" + id + ",Lobby,Snacks\n,,Respaldo\n"

	n, err := uc.ImportMachines(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	m, err := store.Machines().GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Snacks", m.Description)
}

func TestCatalogImport_ProductosEsTodoONada(t *testing.T) {
	store := memory.New()
	uc := usecase.NewCatalogImportUseCase(store)
	csv := "name,price,unit\nAgua,1.20,\nChocolate,abc,pcs\n"

	_, err := uc.ImportProducts(context.Background(), strings.NewReader(csv))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := store.Products().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCatalogImport_ProductosFaltaColumna(t *testing.T) {
	uc := usecase.NewCatalogImportUseCase(memory.New())
	_, err := uc.ImportProducts(context.Background(), strings.NewReader("name\nAgua\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogImport_MaquinaDuplicadaRevierteLaCarga(t *testing.T) {
	store := memory.New()
	uc := usecase.NewCatalogImportUseCase(store)
	id := uuid.NewString()
	csv := "id,location,description\n" + id + ",A,\n" + id + ",B,\n"

	_, err := uc.ImportMachines(context.Background(), strings.NewReader(csv))
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	list, _ := store.Machines().List(context.Background())
	assert.Empty(t, list)
}
