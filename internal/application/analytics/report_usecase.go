// Package analytics contiene los casos de uso de reportes de ventas y el resumen del dashboard.
package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/report"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

const (
	allTime       = "todo el periodo"
	allCategories = "todas las categorías"
	uncategorized = "Sin categoría"
)

// ReportUseCase orquesta las consultas de agregación y aplica los cálculos derivados:
// redondeos, promedios, participación porcentual y resúmenes.
//
// Fuente de datos: ReportRepository (read-only). Los filtros por categoría se resuelven
// primero a ids de artículo con ItemRepository.
type ReportUseCase struct {
	reports    repository.ReportRepository
	items      repository.ItemRepository
	categories repository.CategoryRepository
	pdf        SalesByItemPDFGenerator
	xml        SalesByCategoryXMLExporter
	loc        *time.Location
	now        func() time.Time
}

// NewReportUseCase construye el caso de uso. loc es la zona en la que se interpretan las fechas.
func NewReportUseCase(
	reports repository.ReportRepository,
	items repository.ItemRepository,
	categories repository.CategoryRepository,
	pdf SalesByItemPDFGenerator,
	xml SalesByCategoryXMLExporter,
	loc *time.Location,
) *ReportUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportUseCase{
		reports:    reports,
		items:      items,
		categories: categories,
		pdf:        pdf,
		xml:        xml,
		loc:        loc,
		now:        time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *ReportUseCase) WithClock(now func() time.Time) *ReportUseCase {
	uc.now = now
	return uc
}

// SalesByItem ventas agrupadas por artículo, ingreso descendente.
// Admite rango de fechas y filtro por categoría.
func (uc *ReportUseCase) SalesByItem(ctx context.Context, req dto.SalesReportRequest) (*dto.SalesByItemReportDTO, error) {
	filter, echo, err := uc.buildFilter(ctx, req, true)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reports.SalesByItem(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("reporte por artículo: %w", err)
	}

	out := &dto.SalesByItemReportDTO{
		SalesByItem: make([]dto.ItemSalesDTO, 0, len(rows)),
		Filters:     echo,
	}
	for _, r := range rows {
		out.SalesByItem = append(out.SalesByItem, dto.ItemSalesDTO{
			ItemID:        r.ItemID,
			ItemName:      r.ItemName,
			CategoryName:  r.CategoryName,
			TotalQuantity: r.TotalQuantity,
			TotalRevenue:  r.TotalRevenue,
			AveragePrice:  report.Round2(r.AveragePrice),
			SaleCount:     r.SaleCount,
		})
		out.Summary.TotalQuantity += r.TotalQuantity
		out.Summary.TotalRevenue = out.Summary.TotalRevenue.Add(r.TotalRevenue)
	}
	out.Summary.TotalItems = len(rows)
	out.Summary.AverageRevenuePerItem = report.AverageOf(out.Summary.TotalRevenue, len(rows))
	return out, nil
}

// SalesByDate ventas agrupadas por día, semana ISO o mes, en orden cronológico.
func (uc *ReportUseCase) SalesByDate(ctx context.Context, req dto.SalesReportRequest) (*dto.SalesByDateReportDTO, error) {
	g, err := report.ParseGranularity(strings.TrimSpace(req.GroupBy))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	filter, echo, err := uc.buildFilter(ctx, req, false)
	if err != nil {
		return nil, err
	}
	echo.GroupBy = string(g)

	rows, err := uc.reports.SalesByPeriod(ctx, filter, g)
	if err != nil {
		return nil, fmt.Errorf("reporte por fecha: %w", err)
	}

	out := &dto.SalesByDateReportDTO{
		SalesByDate: make([]dto.PeriodSalesDTO, 0, len(rows)),
		Filters:     echo,
	}
	for _, r := range rows {
		first := r.FirstSaleDate.In(uc.loc)
		out.SalesByDate = append(out.SalesByDate, dto.PeriodSalesDTO{
			Period:           r.Period,
			PeriodLabel:      report.PeriodLabel(g, first),
			TotalSales:       r.TotalQuantity,
			TotalRevenue:     r.TotalRevenue,
			TransactionCount: r.TransactionCount,
			AverageSaleValue: report.Round2(r.AverageSaleValue),
			Date:             first,
		})
		out.Summary.TotalSales += r.TotalQuantity
		out.Summary.TotalRevenue = out.Summary.TotalRevenue.Add(r.TotalRevenue)
		out.Summary.TotalTransactions += r.TransactionCount
	}
	out.Summary.TotalPeriods = len(rows)
	out.Summary.AverageRevenuePerPeriod = report.AverageOf(out.Summary.TotalRevenue, len(rows))
	return out, nil
}

// SalesByCategory ventas agrupadas por categoría con su participación en el ingreso total.
// Las ventas de artículos sin categoría forman su propio grupo.
func (uc *ReportUseCase) SalesByCategory(ctx context.Context, req dto.SalesReportRequest) (*dto.SalesByCategoryReportDTO, error) {
	filter, echo, err := uc.buildFilter(ctx, req, false)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reports.SalesByCategory(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("reporte por categoría: %w", err)
	}

	var grand decimal.Decimal
	for _, r := range rows {
		grand = grand.Add(r.TotalRevenue)
	}

	out := &dto.SalesByCategoryReportDTO{
		SalesByCategory: make([]dto.CategorySalesDTO, 0, len(rows)),
		Filters:         echo,
	}
	for _, r := range rows {
		name := r.CategoryName
		if r.CategoryID == "" {
			name = uncategorized
		}
		out.SalesByCategory = append(out.SalesByCategory, dto.CategorySalesDTO{
			CategoryID:          r.CategoryID,
			CategoryName:        name,
			CategoryDescription: r.CategoryDescription,
			TotalQuantity:       r.TotalQuantity,
			TotalRevenue:        r.TotalRevenue,
			ItemCount:           r.ItemCount,
			SaleCount:           r.SaleCount,
			AverageSaleValue:    report.Round2(r.AverageSaleValue),
			RevenuePercentage:   report.Percentage(r.TotalRevenue, grand),
		})
		out.Summary.TotalItems += r.ItemCount
		out.Summary.TotalQuantity += r.TotalQuantity
		out.Summary.TotalSales += r.SaleCount
	}
	out.Summary.TotalCategories = len(rows)
	out.Summary.TotalRevenue = grand
	out.Summary.AverageRevenuePerCategory = report.AverageOf(grand, len(rows))
	return out, nil
}

// DashboardStats totales globales, stock bajo y ventas de hoy. No admite filtros.
// Las cinco consultas son independientes y se ejecutan en paralelo.
func (uc *ReportUseCase) DashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	today := report.NewSalesFilter().WithDateRange(report.DayRange(uc.now().In(uc.loc)))

	var (
		out         dto.DashboardStatsDTO
		all, onDate repository.SalesTotals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := uc.items.Count(gctx)
		out.TotalItems = n
		return wrap("total de artículos", err)
	})
	g.Go(func() error {
		n, err := uc.categories.Count(gctx)
		out.TotalCategories = n
		return wrap("total de categorías", err)
	})
	g.Go(func() error {
		n, err := uc.items.CountLowStock(gctx, entity.LowStockThreshold)
		out.LowStockItems = n
		return wrap("stock bajo", err)
	})
	g.Go(func() error {
		var err error
		all, err = uc.reports.SalesTotals(gctx, report.NewSalesFilter())
		return wrap("totales de ventas", err)
	})
	g.Go(func() error {
		var err error
		onDate, err = uc.reports.SalesTotals(gctx, today)
		return wrap("ventas de hoy", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.TotalRevenue = all.Revenue
	out.TotalItemsSold = all.ItemsSold
	out.TotalTransactions = all.Transactions
	out.TodayRevenue = onDate.Revenue
	out.TodayItemsSold = onDate.ItemsSold
	return &out, nil
}

// SalesByItemPDF mismo reporte que SalesByItem renderizado como PDF.
func (uc *ReportUseCase) SalesByItemPDF(ctx context.Context, req dto.SalesReportRequest) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("%w: generador PDF no configurado", domain.ErrInternal)
	}
	rep, err := uc.SalesByItem(ctx, req)
	if err != nil {
		return nil, err
	}
	doc, err := uc.pdf.SalesByItemPDF(rep)
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return doc, nil
}

// SalesByCategoryXML mismo reporte que SalesByCategory serializado como XML.
func (uc *ReportUseCase) SalesByCategoryXML(ctx context.Context, req dto.SalesReportRequest) ([]byte, error) {
	if uc.xml == nil {
		return nil, fmt.Errorf("%w: exportador XML no configurado", domain.ErrInternal)
	}
	rep, err := uc.SalesByCategory(ctx, req)
	if err != nil {
		return nil, err
	}
	doc, err := uc.xml.SalesByCategoryXML(rep)
	if err != nil {
		return nil, fmt.Errorf("generar XML: %w", err)
	}
	return doc, nil
}

// buildFilter traduce los parámetros de la petición a un SalesFilter y al eco de filtros.
// El filtro por categoría solo se aplica si withCategory es true.
func (uc *ReportUseCase) buildFilter(ctx context.Context, req dto.SalesReportRequest, withCategory bool) (report.SalesFilter, dto.ReportFiltersDTO, error) {
	start := strings.TrimSpace(req.StartDate)
	end := strings.TrimSpace(req.EndDate)

	dates, err := report.ParseDateRange(start, end, uc.loc)
	if err != nil {
		return report.SalesFilter{}, dto.ReportFiltersDTO{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	filter := report.NewSalesFilter().WithDateRange(dates)
	echo := dto.ReportFiltersDTO{
		DateRange: dateRangeLabel(start, end),
		StartDate: start,
		EndDate:   end,
	}

	if !withCategory {
		return filter, echo, nil
	}
	echo.Category = allCategories
	if categoryID := strings.TrimSpace(req.Category); categoryID != "" {
		ids, err := uc.items.ListIDsByCategory(ctx, categoryID)
		if err != nil {
			return report.SalesFilter{}, dto.ReportFiltersDTO{}, fmt.Errorf("artículos de la categoría: %w", err)
		}
		filter = filter.WithItems(ids)
		echo.Category = categoryID
	}
	return filter, echo, nil
}

func dateRangeLabel(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " a " + end
	case start != "":
		return "desde " + start
	case end != "":
		return "hasta " + end
	default:
		return allTime
	}
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}
