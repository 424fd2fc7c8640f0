package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/analytics"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/report"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/internal/domain/repository/repomock"
)

func TestGetSummary_ArmaTodosLosWidgets(t *testing.T) {
	reports := new(repomock.ReportRepository)
	items := new(repomock.ItemRepository)
	categories := new(repomock.CategoryRepository)
	sales := new(repomock.SaleRepository)
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	uc := analytics.NewDashboardUseCase(reports, items, categories, sales, time.UTC).
		WithClock(func() time.Time { return now })

	items.On("Count", mock.Anything).Return(12, nil)
	categories.On("Count", mock.Anything).Return(3, nil)
	sales.On("Count", mock.Anything).Return(40, nil)
	items.On("ListLowStock", mock.Anything, entity.LowStockThreshold, 10).Return([]*entity.Item{
		{Name: "Cable HDMI", Quantity: 0},
		{Name: "Mouse", Quantity: 4},
	}, nil)
	reports.On("MonthlyRevenue", mock.Anything, mock.MatchedBy(func(sf report.SalesFilter) bool {
		d := sf.Dates()
		return d.From != nil && d.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			d.To != nil && d.To.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	})).Return([]repository.MonthRevenueResult{
		{Month: 1, Revenue: dec("100")},
		{Month: 3, Revenue: dec("45.50")},
	}, nil)
	reports.On("TopCategoriesByItemCount", mock.Anything, 5).Return([]repository.CategoryRankResult{
		{CategoryID: "c1", Name: "Periféricos", ItemCount: 7},
	}, nil)
	reports.On("RecentSales", mock.Anything, 5).Return([]repository.RecentSaleResult{
		{SaleID: "s2", ItemName: "Mouse", Quantity: 1, TotalAmount: dec("20")},
		{SaleID: "s1", ItemName: "", Quantity: 2, TotalAmount: dec("30")},
	}, nil)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, out.TotalItems)
	assert.Equal(t, 3, out.TotalCategories)
	assert.Equal(t, 40, out.TotalSales)
	assert.Equal(t, 2024, out.Year)

	assert.Equal(t, 2, out.LowQuantity)
	assert.Len(t, out.LowQuantityProducts, out.LowQuantity)
	assert.Equal(t, "Cable HDMI", out.LowQuantityProducts[0].Name)

	require.Len(t, out.MonthlyData, 12)
	assert.Equal(t, "Ene", out.MonthlyData[0].Month)
	assert.Equal(t, "100", out.MonthlyData[0].Sales.String())
	assert.True(t, out.MonthlyData[1].Sales.IsZero())
	assert.Equal(t, "45.5", out.MonthlyData[2].Sales.String())
	assert.Equal(t, "Dic", out.MonthlyData[11].Month)

	require.Len(t, out.TopCategories, 1)
	assert.Equal(t, "Periféricos", out.TopCategories[0].Name)
	assert.Equal(t, 7, out.TopCategories[0].Value)

	require.Len(t, out.RecentSales, 2)
	assert.Equal(t, "Mouse", out.RecentSales[0].ProductName)
	assert.Equal(t, "Artículo desconocido", out.RecentSales[1].ProductName)
}

func TestGetSummary_BaseVacia(t *testing.T) {
	reports := new(repomock.ReportRepository)
	items := new(repomock.ItemRepository)
	categories := new(repomock.CategoryRepository)
	sales := new(repomock.SaleRepository)
	uc := analytics.NewDashboardUseCase(reports, items, categories, sales, nil)

	items.On("Count", mock.Anything).Return(0, nil)
	categories.On("Count", mock.Anything).Return(0, nil)
	sales.On("Count", mock.Anything).Return(0, nil)
	items.On("ListLowStock", mock.Anything, mock.Anything, mock.Anything).Return([]*entity.Item{}, nil)
	reports.On("MonthlyRevenue", mock.Anything, mock.Anything).Return([]repository.MonthRevenueResult{}, nil)
	reports.On("TopCategoriesByItemCount", mock.Anything, mock.Anything).Return([]repository.CategoryRankResult{}, nil)
	reports.On("RecentSales", mock.Anything, mock.Anything).Return([]repository.RecentSaleResult{}, nil)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, out.LowQuantity)
	assert.NotNil(t, out.LowQuantityProducts)
	assert.Len(t, out.MonthlyData, 12)
	for _, m := range out.MonthlyData {
		assert.True(t, m.Sales.IsZero())
	}
	assert.Empty(t, out.RecentSales)
}
