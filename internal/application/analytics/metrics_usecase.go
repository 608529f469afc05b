// Package analytics contiene el agregador de métricas del tablero de máquinas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jhoicas/Vending-api/internal/application/dto"
	"github.com/jhoicas/Vending-api/internal/domain"
	"github.com/jhoicas/Vending-api/internal/domain/entity"
	"github.com/jhoicas/Vending-api/internal/domain/repository"
)

const (
	metricsTopProducts     = 10 // top de la vista principal
	DefaultTopProducts     = 5  // endpoint /top-products sin limit
	MaxTopProducts         = 50
	revenueTrendWindowDays = 7
)

var tracer = otel.Tracer("github.com/jhoicas/Vending-api/internal/application/analytics")

// MetricsUseCase calcula las métricas del tablero en cada petición (sin caché).
//
// Las subconsultas corren en paralelo y no comparten snapshot: un restock que
// llegue entre dos de ellas se refleja en una y no en la otra.
type MetricsUseCase struct {
	repo repository.AnalyticsRepository
	now  func() time.Time
}

// NewMetricsUseCase construye el caso de uso.
func NewMetricsUseCase(repo repository.AnalyticsRepository) *MetricsUseCase {
	return &MetricsUseCase{repo: repo, now: time.Now}
}

// WithClock reemplaza el reloj usado para la ventana de la tendencia.
func (uc *MetricsUseCase) WithClock(now func() time.Time) *MetricsUseCase {
	uc.now = now
	return uc
}

// GetMetrics vista principal: totales, ventas y top 10.
func (uc *MetricsUseCase) GetMetrics(ctx context.Context) (*dto.MetricsResponse, error) {
	totals, err := uc.totals(ctx, true)
	if err != nil {
		return nil, err
	}
	out := dto.NewMetricsResponse(totals)
	return &out, nil
}

// GetSummary vista de compatibilidad. Usa la misma agregación que GetMetrics, sin ventas.
func (uc *MetricsUseCase) GetSummary(ctx context.Context) (*dto.SummaryResponse, error) {
	totals, err := uc.totals(ctx, false)
	if err != nil {
		return nil, err
	}
	out := dto.NewSummaryResponse(totals)
	return &out, nil
}

// totals es la única agregación de totales. withSales añade ingresos, número de ventas y top 10.
func (uc *MetricsUseCase) totals(ctx context.Context, withSales bool) (dto.MetricsTotals, error) {
	ctx, span := tracer.Start(ctx, "metrics.Totals")
	span.SetAttributes(attribute.Bool("with_sales", withSales))
	defer span.End()

	// ── Goroutines para paralelizar las consultas ─────────────────────────────
	type countResult struct {
		n   int64
		err error
	}
	type stockResult struct {
		qty   int64
		value decimal.Decimal
		err   error
	}
	type salesResult struct {
		revenue decimal.Decimal
		count   int64
		err     error
	}
	type topResult struct {
		top []repository.TopProductResult
		err error
	}

	productsCh := make(chan countResult, 1)
	machinesCh := make(chan countResult, 1)
	stockCh := make(chan stockResult, 1)
	salesCh := make(chan salesResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		n, err := uc.repo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountMachines(ctx)
		machinesCh <- countResult{n, err}
	}()
	go func() {
		qty, value, err := uc.repo.GetStockTotals(ctx)
		stockCh <- stockResult{qty, value, err}
	}()
	if withSales {
		go func() {
			rev, count, err := uc.repo.GetSalesTotals(ctx)
			salesCh <- salesResult{rev, count, err}
		}()
		go func() {
			top, err := uc.repo.GetTopProducts(ctx, metricsTopProducts)
			topCh <- topResult{top, err}
		}()
	} else {
		salesCh <- salesResult{revenue: decimal.Zero}
		topCh <- topResult{}
	}

	products := <-productsCh
	machines := <-machinesCh
	stock := <-stockCh
	sales := <-salesCh
	top := <-topCh

	if products.err != nil {
		return dto.MetricsTotals{}, fmt.Errorf("metrics: total de productos: %w", products.err)
	}
	if machines.err != nil {
		return dto.MetricsTotals{}, fmt.Errorf("metrics: total de máquinas: %w", machines.err)
	}
	if stock.err != nil {
		return dto.MetricsTotals{}, fmt.Errorf("metrics: stock: %w", stock.err)
	}
	if sales.err != nil {
		return dto.MetricsTotals{}, fmt.Errorf("metrics: ventas: %w", sales.err)
	}
	if top.err != nil {
		return dto.MetricsTotals{}, fmt.Errorf("metrics: top productos: %w", top.err)
	}

	return dto.MetricsTotals{
		TotalProducts:      products.n,
		TotalMachines:      machines.n,
		TotalStockQuantity: stock.qty,
		TotalStockValue:    stock.value,
		TotalRevenue:       sales.revenue,
		TotalSalesCount:    sales.count,
		TopSellingProducts: toTopProducts(top.top),
	}, nil
}

// TopProducts productos más vendidos; limit en [1, MaxTopProducts].
func (uc *MetricsUseCase) TopProducts(ctx context.Context, limit int) ([]dto.TopProductDTO, error) {
	if limit < 1 || limit > MaxTopProducts {
		return nil, fmt.Errorf("%w: limit debe estar entre 1 y %d", domain.ErrInvalidInput, MaxTopProducts)
	}
	ctx, span := tracer.Start(ctx, "metrics.TopProducts")
	defer span.End()

	top, err := uc.repo.GetTopProducts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("metrics: top productos: %w", err)
	}
	return toTopProducts(top), nil
}

// RevenueTrend ingresos por día de los últimos 7 días. Serie dispersa: los días sin ventas no aparecen.
func (uc *MetricsUseCase) RevenueTrend(ctx context.Context) ([]dto.RevenuePointDTO, error) {
	ctx, span := tracer.Start(ctx, "metrics.RevenueTrend")
	defer span.End()

	since := uc.now().AddDate(0, 0, -revenueTrendWindowDays)
	points, err := uc.repo.GetRevenueTrend(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("metrics: tendencia de ingresos: %w", err)
	}
	out := make([]dto.RevenuePointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.RevenuePointDTO{Date: p.Day.Format(dto.DateLayout), Revenue: p.Revenue})
	}
	return out, nil
}

// MachineDistribution stock y valor por máquina, incluidas las vacías, de mayor a menor cantidad.
func (uc *MetricsUseCase) MachineDistribution(ctx context.Context) ([]dto.MachineDistributionDTO, error) {
	ctx, span := tracer.Start(ctx, "metrics.MachineDistribution")
	defer span.End()

	rows, err := uc.repo.GetMachineDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("metrics: distribución por máquina: %w", err)
	}
	out := make([]dto.MachineDistributionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MachineDistributionDTO{
			MachineID:   r.MachineID,
			MachineName: entity.MachineDisplayName(r.MachineID, r.Location, r.Description),
			TotalQty:    r.TotalQty,
			TotalValue:  r.TotalValue,
		})
	}
	return out, nil
}

func toTopProducts(in []repository.TopProductResult) []dto.TopProductDTO {
	out := make([]dto.TopProductDTO, 0, len(in))
	for _, t := range in {
		out = append(out, dto.TopProductDTO{ProductID: t.ProductID, ProductName: t.ProductName, TotalSold: t.TotalSold})
	}
	return out
}
