package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/domain/report"
)

// ItemSalesResult resultado crudo de ventas agrupadas por artículo.
// Lo produce la DB; el use case lo convierte en DTO (redondeos, resumen).
type ItemSalesResult struct {
	ItemID        string
	ItemName      string
	CategoryName  string // vacío si el artículo no tiene categoría
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
	SaleCount     int
	AveragePrice  decimal.Decimal // AVG(items.price) sobre las filas unidas, sin redondear
}

// PeriodSalesResult resultado crudo de ventas agrupadas por periodo.
type PeriodSalesResult struct {
	Period           string // clave del grupo: 2024-01-15 | 2024-W03 | 2024-01
	TotalQuantity    int64
	TotalRevenue     decimal.Decimal
	TransactionCount int
	AverageSaleValue decimal.Decimal // sin redondear
	FirstSaleDate    time.Time
}

// CategorySalesResult resultado crudo de ventas agrupadas por categoría.
// CategoryID vacío agrupa las ventas de artículos sin categoría.
type CategorySalesResult struct {
	CategoryID          string
	CategoryName        string
	CategoryDescription string
	TotalQuantity       int64
	TotalRevenue        decimal.Decimal
	ItemCount           int // artículos distintos vendidos en el grupo
	SaleCount           int
	AverageSaleValue    decimal.Decimal // sin redondear
}

// SalesTotals totales de las ventas que cumplen un filtro (ceros si no hay ventas).
type SalesTotals struct {
	Revenue      decimal.Decimal
	ItemsSold    int64
	Transactions int
}

// MonthRevenueResult ingresos de un mes (1-12) del año consultado.
type MonthRevenueResult struct {
	Month   int
	Revenue decimal.Decimal
}

// RecentSaleResult venta reciente con el nombre del artículo (vacío si la referencia no existe).
type RecentSaleResult struct {
	SaleID      string
	ItemName    string
	Quantity    int
	TotalAmount decimal.Decimal
	SaleDate    time.Time
}

// CategoryRankResult categoría con su número de artículos.
type CategoryRankResult struct {
	CategoryID string
	Name       string
	ItemCount  int
}

// ReportRepository define las consultas de agregación sobre ventas.
// Las implementaciones son read-only (no modifican datos).
type ReportRepository interface {
	// SalesByItem une Sale→Item→Category (la categoría puede faltar), agrupa por artículo
	// y ordena por ingreso descendente. Artículos sin ventas no aparecen.
	SalesByItem(ctx context.Context, filter report.SalesFilter) ([]ItemSalesResult, error)

	// SalesByPeriod agrupa por día, semana ISO o mes de sale_date, ordenado por la primera venta del grupo.
	SalesByPeriod(ctx context.Context, filter report.SalesFilter, g report.Granularity) ([]PeriodSalesResult, error)

	// SalesByCategory agrupa por categoría (incluye el grupo sin categoría), ingreso descendente.
	SalesByCategory(ctx context.Context, filter report.SalesFilter) ([]CategorySalesResult, error)

	// SalesTotals suma ingresos, unidades y transacciones de las ventas del filtro.
	SalesTotals(ctx context.Context, filter report.SalesFilter) (SalesTotals, error)

	// MonthlyRevenue ingresos por mes de las ventas del filtro; los meses sin ventas no aparecen.
	MonthlyRevenue(ctx context.Context, filter report.SalesFilter) ([]MonthRevenueResult, error)

	// RecentSales últimas `limit` ventas, más nuevas primero.
	RecentSales(ctx context.Context, limit int) ([]RecentSaleResult, error)

	// TopCategoriesByItemCount las `limit` categorías con más artículos.
	TopCategoriesByItemCount(ctx context.Context, limit int) ([]CategoryRankResult, error)
}
