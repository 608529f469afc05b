package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult producto con unidades vendidas (solo productos con ventas).
type TopProductResult struct {
	ProductID   string
	ProductName string
	TotalSold   int64
}

// RevenuePointResult ingresos de un día calendario.
type RevenuePointResult struct {
	Day     time.Time
	Revenue decimal.Decimal
}

// MachineDistributionResult stock por máquina; ceros cuando la máquina no tiene filas.
type MachineDistributionResult struct {
	MachineID   string
	Location    string
	Description string
	TotalQty    int64
	TotalValue  decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura del tablero.
// Las implementaciones son read-only y devuelven 0 (nunca null) en agregados vacíos.
type AnalyticsRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountMachines(ctx context.Context) (int64, error)

	// GetStockTotals suma quantity y quantity×price sobre el ledger unido al catálogo.
	GetStockTotals(ctx context.Context) (qty int64, value decimal.Decimal, err error)

	// GetSalesTotals devuelve SUM(total_amount) y COUNT(*) de sales.
	GetSalesTotals(ctx context.Context) (revenue decimal.Decimal, count int64, err error)

	// GetTopProducts ordena por unidades vendidas desc y trunca a limit.
	GetTopProducts(ctx context.Context, limit int) ([]TopProductResult, error)

	// GetRevenueTrend agrupa por fecha las ventas con sale_time >= since; orden ascendente, sin rellenar días vacíos.
	GetRevenueTrend(ctx context.Context, since time.Time) ([]RevenuePointResult, error)

	// GetMachineDistribution incluye todas las máquinas (left join), orden desc por cantidad.
	GetMachineDistribution(ctx context.Context) ([]MachineDistributionResult, error)
}
