package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vending-api/internal/domain"
)

func TestProductRequest_Normalize(t *testing.T) {
	zero := decimal.Zero
	r := ProductRequest{Name: "  Agua  ", Price: &zero}
	require.NoError(t, r.Normalize())
	assert.Equal(t, "Agua", r.Name)
	assert.Equal(t, "pcs", r.Unit)

	missing := ProductRequest{Name: "Agua"}
	assert.ErrorIs(t, missing.Normalize(), domain.ErrInvalidInput)

	neg := decimal.NewFromInt(-1)
	negative := ProductRequest{Name: "Agua", Price: &neg}
	assert.ErrorIs(t, negative.Normalize(), domain.ErrInvalidInput)

	blank := ProductRequest{Name: "   ", Price: &zero}
	assert.ErrorIs(t, blank.Normalize(), domain.ErrInvalidInput)
}

func TestProductRequest_NormalizePrecioSegunColumna(t *testing.T) {
	for _, ok := range []string{"1.5", "1.50", "1.500", "9999999999.99"} {
		price := decimal.RequireFromString(ok)
		r := ProductRequest{Name: "Agua", Price: &price}
		assert.NoError(t, r.Normalize(), ok)
	}
	for _, bad := range []string{"1.999", "0.001", "10000000000", "1e12"} {
		price := decimal.RequireFromString(bad)
		r := ProductRequest{Name: "Agua", Price: &price}
		assert.ErrorIs(t, r.Normalize(), domain.ErrInvalidInput, bad)
	}
}

func TestParseQty_AceptaNumeroYStringNumerico(t *testing.T) {
	var body SetQuantityRequest
	require.NoError(t, json.Unmarshal([]byte(`{"qty": 7}`), &body))
	n, err := ParseQty(body.Qty)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	require.NoError(t, json.Unmarshal([]byte(`{"qty": "12"}`), &body))
	n, err = ParseQty(body.Qty)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
}

func TestParseQty_Rechazos(t *testing.T) {
	var body SetQuantityRequest
	assert.Error(t, json.Unmarshal([]byte(`{"qty": "abc"}`), &body))

	body = SetQuantityRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"qty": null}`), &body))
	_, err := ParseQty(body.Qty)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	half := decimal.RequireFromString("1.5")
	_, err = ParseQty(&half)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMetricsViews_CamposCompartidosIguales(t *testing.T) {
	totals := MetricsTotals{
		TotalProducts:      3,
		TotalMachines:      2,
		TotalStockQuantity: 40,
		TotalStockValue:    decimal.RequireFromString("55.50"),
	}
	primary := NewMetricsResponse(totals)
	compat := NewSummaryResponse(totals)

	assert.Equal(t, primary.TotalProducts, compat.TotalProducts)
	assert.Equal(t, primary.TotalMachines, compat.ActiveMachines)
	assert.Equal(t, primary.TotalStockQuantity, compat.ItemsInStock)
	assert.True(t, primary.TotalStockValue.Equal(compat.StockValue))
	assert.NotNil(t, primary.TopSellingProducts)
}

func TestDecimalSeSerializaComoNumero(t *testing.T) {
	b, err := json.Marshal(NewSummaryResponse(MetricsTotals{TotalStockValue: decimal.RequireFromString("12.50")}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalProducts":0,"activeMachines":0,"itemsInStock":0,"stockValue":12.5}`, string(b))
}
