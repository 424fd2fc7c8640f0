// Package pdf implementa la exportación del reporte de ventas por artículo a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app     │  Título + fecha de emisión  │
//	│  FILTROS: periodo / categoría                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Artículo | Categoría | Cant. | Ventas | P.Prom | $  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: artículos / unidades / ingresos / promedio         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/ventas-api/internal/application/analytics"
	"github.com/jhoicas/ventas-api/internal/application/dto"
)

var _ analytics.SalesByItemPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.SalesByItemPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	appName string
	loc     *time.Location
	printer *message.Printer
	now     func() time.Time
}

// NewMarotoPDFGenerator construye el generador. appName aparece en la cabecera.
func NewMarotoPDFGenerator(appName string, loc *time.Location) *MarotoPDFGenerator {
	if loc == nil {
		loc = time.UTC
	}
	return &MarotoPDFGenerator{
		appName: appName,
		loc:     loc,
		printer: message.NewPrinter(language.Spanish),
		now:     time.Now,
	}
}

// SalesByItemPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) SalesByItemPDF(rep *dto.SalesByItemReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ventas por artículo", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow())
	m.AddRows(filtersRow(rep.Filters))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(rep.SalesByItem) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No hay ventas para los filtros indicados.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	for _, r := range g.tableDetailRows(rep.SalesByItem) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.summaryRow(rep.Summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow() core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE VENTAS POR ARTÍCULO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+g.now().In(g.loc).Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func filtersRow(f dto.ReportFiltersDTO) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Periodo: %s   |   Categoría: %s", f.DateRange, nonEmpty(f.Category, "todas las categorías")),
			props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Artículo", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Cant.", 1, align.Center),
		h("Ventas", 1, align.Center),
		h("Precio prom.", 2, align.Right),
		h("Ingresos", 2, align.Right),
	)
}

func (g *MarotoPDFGenerator) tableDetailRows(items []dto.ItemSalesDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	for _, it := range items {
		result = append(result, row.New(7).Add(
			cell(it.ItemName, 4, align.Left),
			cell(nonEmpty(it.CategoryName, "-"), 2, align.Left),
			cell(g.printer.Sprintf("%d", it.TotalQuantity), 1, align.Center),
			cell(g.printer.Sprintf("%d", it.SaleCount), 1, align.Center),
			cell(g.formatMoney(it.AveragePrice), 2, align.Right),
			cell(g.formatMoney(it.TotalRevenue), 2, align.Right),
		))
	}
	return result
}

func (g *MarotoPDFGenerator) summaryRow(s dto.SalesByItemSummaryDTO) core.Row {
	label := func(v string) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(v string) core.Component {
		return text.New(v, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Artículos:"),
			label("Unidades vendidas:"),
			label("Ingresos totales:"),
			label("Promedio por artículo:"),
		),
		col.New(4).Add(
			value(g.printer.Sprintf("%d", s.TotalItems)),
			value(g.printer.Sprintf("%d", s.TotalQuantity)),
			value(g.formatMoney(s.TotalRevenue)),
			value(g.formatMoney(s.AverageRevenuePerItem)),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney "$1.234.567,50": miles según el locale y siempre dos decimales.
func (g *MarotoPDFGenerator) formatMoney(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("%s$%s,%02d", sign, g.printer.Sprintf("%d", whole.IntPart()), cents)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
