package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
)

func TestSalesByItemPDF_GeneraDocumento(t *testing.T) {
	g := NewMarotoPDFGenerator("Ventas API", time.UTC)
	rep := &dto.SalesByItemReportDTO{
		SalesByItem: []dto.ItemSalesDTO{
			{ItemID: "1", ItemName: "Teclado", CategoryName: "Periféricos", TotalQuantity: 3, TotalRevenue: decimal.RequireFromString("150.00"), AveragePrice: decimal.RequireFromString("50.00"), SaleCount: 2},
			{ItemID: "2", ItemName: "Cable", TotalQuantity: 10, TotalRevenue: decimal.RequireFromString("20.00"), AveragePrice: decimal.RequireFromString("2.00"), SaleCount: 1},
		},
		Summary: dto.SalesByItemSummaryDTO{
			TotalItems: 2, TotalQuantity: 13,
			TotalRevenue:          decimal.RequireFromString("170.00"),
			AverageRevenuePerItem: decimal.RequireFromString("85.00"),
		},
		Filters: dto.ReportFiltersDTO{DateRange: "todo el periodo", Category: "todas las categorías"},
	}

	out, err := g.SalesByItemPDF(rep)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestSalesByItemPDF_SinVentas(t *testing.T) {
	g := NewMarotoPDFGenerator("Ventas API", nil)
	out, err := g.SalesByItemPDF(&dto.SalesByItemReportDTO{Filters: dto.ReportFiltersDTO{DateRange: "todo el periodo"}})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFormatMoney(t *testing.T) {
	g := NewMarotoPDFGenerator("x", nil)
	assert.Equal(t, "$1.234.567,50", g.formatMoney(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "$0,00", g.formatMoney(decimal.Zero))
	assert.Equal(t, "$12,35", g.formatMoney(decimal.RequireFromString("12.345")))
	assert.Equal(t, "-$5,10", g.formatMoney(decimal.RequireFromString("-5.1")))
}
