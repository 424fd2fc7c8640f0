package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesReportRequest parámetros de los reportes de ventas.
type SalesReportRequest struct {
	StartDate string `query:"startDate"` // YYYY-MM-DD, opcional
	EndDate   string `query:"endDate"`   // YYYY-MM-DD, opcional e inclusivo
	Category  string `query:"category"`  // id de categoría, solo sales-by-item
	GroupBy   string `query:"groupBy"`   // day (default) | week | month, solo sales-by-date
}

// ReportFiltersDTO eco de los filtros aplicados.
type ReportFiltersDTO struct {
	DateRange string `json:"date_range"` // "2024-01-01 a 2024-01-31", "desde ...", "hasta ..." o "todo el periodo"
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Category  string `json:"category,omitempty"` // id de la categoría o "todas las categorías"
	GroupBy   string `json:"group_by,omitempty"`
}

// ── Por artículo ──────────────────────────────────────────────────────────────

// ItemSalesDTO ventas agregadas de un artículo.
type ItemSalesDTO struct {
	ItemID        string          `json:"item_id"`
	ItemName      string          `json:"item_name"`
	CategoryName  string          `json:"category_name,omitempty"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AveragePrice  decimal.Decimal `json:"average_price"` // redondeado a 2 decimales
	SaleCount     int             `json:"sale_count"`
}

// SalesByItemSummaryDTO totales del reporte por artículo.
type SalesByItemSummaryDTO struct {
	TotalItems            int             `json:"total_items"`
	TotalQuantity         int64           `json:"total_quantity"`
	TotalRevenue          decimal.Decimal `json:"total_revenue"`
	AverageRevenuePerItem decimal.Decimal `json:"average_revenue_per_item"`
}

// SalesByItemReportDTO respuesta de GET /api/reports/sales-by-item.
type SalesByItemReportDTO struct {
	SalesByItem []ItemSalesDTO        `json:"sales_by_item"`
	Summary     SalesByItemSummaryDTO `json:"summary"`
	Filters     ReportFiltersDTO      `json:"filters"`
}

// ── Por fecha ─────────────────────────────────────────────────────────────────

// PeriodSalesDTO ventas agregadas de un periodo.
type PeriodSalesDTO struct {
	Period           string          `json:"period"`
	PeriodLabel      string          `json:"period_label"`
	TotalSales       int64           `json:"total_sales"` // unidades vendidas
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TransactionCount int             `json:"transaction_count"`
	AverageSaleValue decimal.Decimal `json:"average_sale_value"`
	Date             time.Time       `json:"date"` // primera venta del periodo
}

// SalesByDateSummaryDTO totales del reporte por fecha.
type SalesByDateSummaryDTO struct {
	TotalPeriods            int             `json:"total_periods"`
	TotalSales              int64           `json:"total_sales"`
	TotalRevenue            decimal.Decimal `json:"total_revenue"`
	TotalTransactions       int             `json:"total_transactions"`
	AverageRevenuePerPeriod decimal.Decimal `json:"average_revenue_per_period"`
}

// SalesByDateReportDTO respuesta de GET /api/reports/sales-by-date.
type SalesByDateReportDTO struct {
	SalesByDate []PeriodSalesDTO      `json:"sales_by_date"`
	Summary     SalesByDateSummaryDTO `json:"summary"`
	Filters     ReportFiltersDTO      `json:"filters"`
}

// ── Por categoría ─────────────────────────────────────────────────────────────

// CategorySalesDTO ventas agregadas de una categoría.
type CategorySalesDTO struct {
	CategoryID          string          `json:"category_id,omitempty"`
	CategoryName        string          `json:"category_name"`
	CategoryDescription string          `json:"category_description,omitempty"`
	TotalQuantity       int64           `json:"total_quantity"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	ItemCount           int             `json:"item_count"`
	SaleCount           int             `json:"sale_count"`
	AverageSaleValue    decimal.Decimal `json:"average_sale_value"`
	RevenuePercentage   decimal.Decimal `json:"revenue_percentage"` // participación % en ingresos totales
}

// SalesByCategorySummaryDTO totales del reporte por categoría.
type SalesByCategorySummaryDTO struct {
	TotalCategories           int             `json:"total_categories"`
	TotalItems                int             `json:"total_items"`
	TotalQuantity             int64           `json:"total_quantity"`
	TotalRevenue              decimal.Decimal `json:"total_revenue"`
	TotalSales                int             `json:"total_sales"`
	AverageRevenuePerCategory decimal.Decimal `json:"average_revenue_per_category"`
}

// SalesByCategoryReportDTO respuesta de GET /api/reports/sales-by-category.
type SalesByCategoryReportDTO struct {
	SalesByCategory []CategorySalesDTO        `json:"sales_by_category"`
	Summary         SalesByCategorySummaryDTO `json:"summary"`
	Filters         ReportFiltersDTO          `json:"filters"`
}

// ── Estadísticas ──────────────────────────────────────────────────────────────

// DashboardStatsDTO respuesta de GET /api/reports/dashboard (no admite filtros).
type DashboardStatsDTO struct {
	TotalItems        int             `json:"total_items"`
	TotalCategories   int             `json:"total_categories"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalItemsSold    int64           `json:"total_items_sold"`
	TotalTransactions int             `json:"total_transactions"`
	LowStockItems     int             `json:"low_stock_items"`
	TodayRevenue      decimal.Decimal `json:"today_revenue"`
	TodayItemsSold    int64           `json:"today_items_sold"`
}
