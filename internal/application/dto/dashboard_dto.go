package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalItems      int `json:"total_items"`
	TotalCategories int `json:"total_categories"`
	TotalSales      int `json:"total_sales"`

	// Artículos con stock bajo (máx. 10, de menor a mayor cantidad) y cuántos se listan
	LowQuantity         int               `json:"low_quantity"`
	LowQuantityProducts []LowStockItemDTO `json:"low_quantity_products"`

	// 12 meses del año en curso; un mes sin ventas reporta 0
	Year        int               `json:"year"`
	MonthlyData []MonthlySalesDTO `json:"monthly_data"`

	TopCategories []CategoryRankDTO `json:"top_categories"`
	RecentSales   []RecentSaleDTO   `json:"recent_sales"`
}

// LowStockItemDTO artículo con stock bajo.
type LowStockItemDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// MonthlySalesDTO ingresos de un mes.
type MonthlySalesDTO struct {
	Month string          `json:"month"` // "Ene", "Feb", ...
	Sales decimal.Decimal `json:"sales"`
}

// CategoryRankDTO categoría con su número de artículos.
type CategoryRankDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// RecentSaleDTO venta reciente para el widget del dashboard.
type RecentSaleDTO struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}
