package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Vending-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo agregados del tablero calculados sobre el estado actual.
type AnalyticsRepo struct{ s *Store }

func (r *AnalyticsRepo) CountProducts(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.products)), nil
}

func (r *AnalyticsRepo) CountMachines(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.machines)), nil
}

func (r *AnalyticsRepo) GetStockTotals(_ context.Context) (int64, decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var qty int64
	value := decimal.Zero
	for _, rec := range r.s.inventory {
		qty += rec.Quantity
		value = value.Add(r.s.lineLocked(rec).Value())
	}
	return qty, value, nil
}

func (r *AnalyticsRepo) GetSalesTotals(_ context.Context) (decimal.Decimal, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	revenue := decimal.Zero
	for _, sale := range r.s.sales {
		revenue = revenue.Add(sale.TotalAmount)
	}
	return revenue, int64(len(r.s.sales)), nil
}

func (r *AnalyticsRepo) GetTopProducts(_ context.Context, limit int) ([]repository.TopProductResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sold := make(map[string]int64)
	for _, sale := range r.s.sales {
		for _, it := range sale.Items {
			sold[it.ProductID] += it.Quantity
		}
	}

	out := make([]repository.TopProductResult, 0, len(sold))
	for id, total := range sold {
		if total <= 0 {
			continue
		}
		out = append(out, repository.TopProductResult{
			ProductID:   id,
			ProductName: r.s.products[id].Name,
			TotalSold:   total,
		})
	}
	slices.SortFunc(out, func(a, b repository.TopProductResult) int {
		return cmp.Or(cmp.Compare(b.TotalSold, a.TotalSold), cmp.Compare(a.ProductName, b.ProductName))
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *AnalyticsRepo) GetRevenueTrend(_ context.Context, since time.Time) ([]repository.RevenuePointResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	byDay := make(map[time.Time]decimal.Decimal)
	for _, sale := range r.s.sales {
		if sale.SaleTime.Before(since) {
			continue
		}
		t := sale.SaleTime.UTC()
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		byDay[day] = byDay[day].Add(sale.TotalAmount)
	}

	out := make([]repository.RevenuePointResult, 0, len(byDay))
	for day, revenue := range byDay {
		out = append(out, repository.RevenuePointResult{Day: day, Revenue: revenue})
	}
	slices.SortFunc(out, func(a, b repository.RevenuePointResult) int {
		return a.Day.Compare(b.Day)
	})
	return out, nil
}

func (r *AnalyticsRepo) GetMachineDistribution(_ context.Context) ([]repository.MachineDistributionResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	byMachine := make(map[string]*repository.MachineDistributionResult, len(r.s.machines))
	for id, m := range r.s.machines {
		byMachine[id] = &repository.MachineDistributionResult{
			MachineID:   id,
			Location:    m.Location,
			Description: m.Description,
			TotalValue:  decimal.Zero,
		}
	}
	for _, rec := range r.s.inventory {
		d, ok := byMachine[rec.MachineID]
		if !ok {
			continue
		}
		d.TotalQty += rec.Quantity
		d.TotalValue = d.TotalValue.Add(r.s.lineLocked(rec).Value())
	}

	out := make([]repository.MachineDistributionResult, 0, len(byMachine))
	for _, d := range byMachine {
		out = append(out, *d)
	}
	slices.SortFunc(out, func(a, b repository.MachineDistributionResult) int {
		return cmp.Or(cmp.Compare(b.TotalQty, a.TotalQty), cmp.Compare(a.MachineID, b.MachineID))
	})
	return out, nil
}
