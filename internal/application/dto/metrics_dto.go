package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricsTotals agregación canónica del tablero. Las dos vistas de métricas
// se construyen desde el mismo valor para que no diverjan.
type MetricsTotals struct {
	TotalProducts      int64
	TotalMachines      int64
	TotalStockQuantity int64
	TotalStockValue    decimal.Decimal
	TotalRevenue       decimal.Decimal
	TotalSalesCount    int64
	TopSellingProducts []TopProductDTO
}

// MetricsResponse respuesta de GET /api/metrics.
type MetricsResponse struct {
	TotalProducts      int64           `json:"total_products"`
	TotalMachines      int64           `json:"total_machines"`
	TotalStockQuantity int64           `json:"total_stock_quantity"`
	TotalStockValue    decimal.Decimal `json:"total_stock_value" swaggertype:"number"`
	TotalRevenue       decimal.Decimal `json:"total_revenue" swaggertype:"number"`
	TotalSalesCount    int64           `json:"total_sales_count"`
	TopSellingProducts []TopProductDTO `json:"top_selling_products"`
}

// SummaryResponse vista de compatibilidad de GET /api/metrics/summary.
type SummaryResponse struct {
	TotalProducts  int64           `json:"totalProducts"`
	ActiveMachines int64           `json:"activeMachines"`
	ItemsInStock   int64           `json:"itemsInStock"`
	StockValue     decimal.Decimal `json:"stockValue" swaggertype:"number"`
}

// TopProductDTO producto más vendido.
type TopProductDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	TotalSold   int64  `json:"total_sold"`
}

// RevenuePointDTO ingresos de un día (YYYY-MM-DD).
type RevenuePointDTO struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue" swaggertype:"number"`
}

// MachineDistributionDTO stock y valor por máquina.
type MachineDistributionDTO struct {
	MachineID   string          `json:"machine_id"`
	MachineName string          `json:"machine_name"`
	TotalQty    int64           `json:"total_qty"`
	TotalValue  decimal.Decimal `json:"total_value" swaggertype:"number"`
}

// NewMetricsResponse vista principal.
func NewMetricsResponse(t MetricsTotals) MetricsResponse {
	top := t.TopSellingProducts
	if top == nil {
		top = []TopProductDTO{}
	}
	return MetricsResponse{
		TotalProducts:      t.TotalProducts,
		TotalMachines:      t.TotalMachines,
		TotalStockQuantity: t.TotalStockQuantity,
		TotalStockValue:    t.TotalStockValue,
		TotalRevenue:       t.TotalRevenue,
		TotalSalesCount:    t.TotalSalesCount,
		TopSellingProducts: top,
	}
}

// NewSummaryResponse vista de compatibilidad: solo renombra campos.
func NewSummaryResponse(t MetricsTotals) SummaryResponse {
	return SummaryResponse{
		TotalProducts:  t.TotalProducts,
		ActiveMachines: t.TotalMachines,
		ItemsInStock:   t.TotalStockQuantity,
		StockValue:     t.TotalStockValue,
	}
}

// DateLayout formato de las fechas de la serie de ingresos.
const DateLayout = time.DateOnly
