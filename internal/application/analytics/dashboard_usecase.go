package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/report"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

const (
	dashboardLowStockLimit = 10 // artículos con stock bajo en el widget
	dashboardTopCategories = 5
	dashboardRecentSales   = 5
	unknownItemPlaceholder = "Artículo desconocido"
)

// DashboardUseCase genera el resumen del dashboard: conteos, stock bajo, serie mensual del año,
// categorías con más artículos y últimas ventas.
//
// Fuente de datos: repositorios read-only. Las siete consultas son independientes.
type DashboardUseCase struct {
	reports    repository.ReportRepository
	items      repository.ItemRepository
	categories repository.CategoryRepository
	sales      repository.SaleRepository
	loc        *time.Location
	now        func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	reports repository.ReportRepository,
	items repository.ItemRepository,
	categories repository.CategoryRepository,
	sales repository.SaleRepository,
	loc *time.Location,
) *DashboardUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardUseCase{
		reports:    reports,
		items:      items,
		categories: categories,
		sales:      sales,
		loc:        loc,
		now:        time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	year := uc.now().In(uc.loc).Year()
	yearFilter := report.NewSalesFilter().WithDateRange(report.YearRange(year, uc.loc))

	var (
		out      = dto.DashboardSummaryDTO{Year: year}
		lowStock []*entity.Item
		monthly  []repository.MonthRevenueResult
		top      []repository.CategoryRankResult
		recent   []repository.RecentSaleResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := uc.items.Count(gctx)
		out.TotalItems = n
		return wrap("dashboard: total de artículos", err)
	})
	g.Go(func() error {
		n, err := uc.categories.Count(gctx)
		out.TotalCategories = n
		return wrap("dashboard: total de categorías", err)
	})
	g.Go(func() error {
		n, err := uc.sales.Count(gctx)
		out.TotalSales = n
		return wrap("dashboard: total de ventas", err)
	})
	g.Go(func() error {
		var err error
		lowStock, err = uc.items.ListLowStock(gctx, entity.LowStockThreshold, dashboardLowStockLimit)
		return wrap("dashboard: stock bajo", err)
	})
	g.Go(func() error {
		var err error
		monthly, err = uc.reports.MonthlyRevenue(gctx, yearFilter)
		return wrap("dashboard: ingresos mensuales", err)
	})
	g.Go(func() error {
		var err error
		top, err = uc.reports.TopCategoriesByItemCount(gctx, dashboardTopCategories)
		return wrap("dashboard: top categorías", err)
	})
	g.Go(func() error {
		var err error
		recent, err = uc.reports.RecentSales(gctx, dashboardRecentSales)
		return wrap("dashboard: ventas recientes", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.LowQuantityProducts = make([]dto.LowStockItemDTO, 0, len(lowStock))
	for _, it := range lowStock {
		out.LowQuantityProducts = append(out.LowQuantityProducts, dto.LowStockItemDTO{Name: it.Name, Quantity: it.Quantity})
	}
	out.LowQuantity = len(out.LowQuantityProducts)

	out.MonthlyData = monthlySeries(monthly)

	out.TopCategories = make([]dto.CategoryRankDTO, 0, len(top))
	for _, c := range top {
		out.TopCategories = append(out.TopCategories, dto.CategoryRankDTO{Name: c.Name, Value: c.ItemCount})
	}

	out.RecentSales = make([]dto.RecentSaleDTO, 0, len(recent))
	for _, s := range recent {
		name := s.ItemName
		if name == "" {
			name = unknownItemPlaceholder
		}
		out.RecentSales = append(out.RecentSales, dto.RecentSaleDTO{ProductName: name, Quantity: s.Quantity, Amount: s.TotalAmount})
	}
	return &out, nil
}

// monthlySeries 12 entradas Ene..Dic; los meses sin ventas quedan en 0.
func monthlySeries(rows []repository.MonthRevenueResult) []dto.MonthlySalesDTO {
	var byMonth [12]decimal.Decimal
	for _, r := range rows {
		if r.Month < 1 || r.Month > 12 {
			continue
		}
		byMonth[r.Month-1] = byMonth[r.Month-1].Add(r.Revenue)
	}
	series := make([]dto.MonthlySalesDTO, 12)
	for i := range series {
		series[i] = dto.MonthlySalesDTO{Month: report.MonthShort(time.Month(i + 1)), Sales: byMonth[i]}
	}
	return series
}
