package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Vending-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el tablero.
// Cada agregado usa COALESCE para devolver cero cuando la tabla está vacía.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountProducts: %w", err)
	}
	return n, nil
}

func (r *AnalyticsRepo) CountMachines(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM machines`).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountMachines: %w", err)
	}
	return n, nil
}

// GetStockTotals suma cantidades y valor (quantity × price) del ledger.
func (r *AnalyticsRepo) GetStockTotals(ctx context.Context) (qty int64, value decimal.Decimal, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(i.quantity), 0)::bigint   AS total_qty,
	    COALESCE(SUM(i.quantity * p.price), 0) AS total_value
	FROM inventory i
	JOIN products p ON p.id = i.product_id`

	if err = r.q.QueryRow(ctx, query).Scan(&qty, &value); err != nil {
		return 0, decimal.Zero, fmt.Errorf("analytics.GetStockTotals: %w", err)
	}
	return qty, value, nil
}

// GetSalesTotals ingresos y número de ventas.
func (r *AnalyticsRepo) GetSalesTotals(ctx context.Context) (revenue decimal.Decimal, count int64, err error) {
	const query = `SELECT COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS sales FROM sales`

	if err = r.q.QueryRow(ctx, query).Scan(&revenue, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("analytics.GetSalesTotals: %w", err)
	}
	return revenue, count, nil
}

type topProductRow struct {
	ProductID   string `db:"product_id"`
	ProductName string `db:"product_name"`
	TotalSold   int64  `db:"total_sold"`
}

// GetTopProducts productos más vendidos por unidades. Los productos sin ventas no aparecen.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    p.id::text                     AS product_id,
	    p.name                         AS product_name,
	    SUM(si.quantity)::bigint       AS total_sold
	FROM sale_items si
	JOIN products p ON p.id = si.product_id
	GROUP BY p.id, p.name
	HAVING SUM(si.quantity) > 0
	ORDER BY total_sold DESC
	LIMIT $1`

	var rows []topProductRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}

	out := make([]repository.TopProductResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, repository.TopProductResult(row))
	}
	return out, nil
}

type revenuePointRow struct {
	Day     time.Time       `db:"day"`
	Revenue decimal.Decimal `db:"revenue"`
}

// GetRevenueTrend serie diaria (UTC) desde since. Días sin ventas se omiten.
func (r *AnalyticsRepo) GetRevenueTrend(ctx context.Context, since time.Time) ([]repository.RevenuePointResult, error) {
	const query = `
	SELECT
	    (sale_time AT TIME ZONE 'UTC')::date AS day,
	    COALESCE(SUM(total_amount), 0)       AS revenue
	FROM sales
	WHERE sale_time >= $1
	GROUP BY day
	ORDER BY day ASC`

	var rows []revenuePointRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, since); err != nil {
		return nil, fmt.Errorf("analytics.GetRevenueTrend: %w", err)
	}

	out := make([]repository.RevenuePointResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, repository.RevenuePointResult(row))
	}
	return out, nil
}

type machineDistributionRow struct {
	MachineID   string          `db:"machine_id"`
	Location    string          `db:"location"`
	Description string          `db:"description"`
	TotalQty    int64           `db:"total_qty"`
	TotalValue  decimal.Decimal `db:"total_value"`
}

// GetMachineDistribution stock por máquina; el LEFT JOIN mantiene las máquinas vacías con ceros.
func (r *AnalyticsRepo) GetMachineDistribution(ctx context.Context) ([]repository.MachineDistributionResult, error) {
	const query = `
	SELECT
	    m.id::text                               AS machine_id,
	    m.location                               AS location,
	    m.description                            AS description,
	    COALESCE(SUM(i.quantity), 0)::bigint     AS total_qty,
	    COALESCE(SUM(i.quantity * p.price), 0)   AS total_value
	FROM machines m
	LEFT JOIN inventory i ON i.machine_id = m.id
	LEFT JOIN products  p ON p.id = i.product_id
	GROUP BY m.id, m.location, m.description
	ORDER BY total_qty DESC, m.id`

	var rows []machineDistributionRow
	if err := pgxscan.Select(ctx, r.q, &rows, query); err != nil {
		return nil, fmt.Errorf("analytics.GetMachineDistribution: %w", err)
	}

	out := make([]repository.MachineDistributionResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, repository.MachineDistributionResult(row))
	}
	return out, nil
}
