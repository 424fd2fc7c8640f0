// Package xmlexport serializa reportes de ventas a XML con etree.
package xmlexport

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/ventas-api/internal/application/analytics"
	"github.com/jhoicas/ventas-api/internal/application/dto"
)

var _ analytics.SalesByCategoryXMLExporter = (*EtreeExporter)(nil)

// EtreeExporter implementa analytics.SalesByCategoryXMLExporter.
type EtreeExporter struct {
	now func() time.Time
}

// NewEtreeExporter crea el exportador.
func NewEtreeExporter() *EtreeExporter {
	return &EtreeExporter{now: time.Now}
}

// SalesByCategoryXML produce:
//
//	<SalesByCategoryReport generatedAt="...">
//	  <Filters dateRange="..."/>
//	  <Categories><Category id="...">...</Category></Categories>
//	  <Summary>...</Summary>
//	</SalesByCategoryReport>
func (e *EtreeExporter) SalesByCategoryXML(rep *dto.SalesByCategoryReportDTO) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("SalesByCategoryReport")
	root.CreateAttr("generatedAt", e.now().UTC().Format(time.RFC3339))

	filters := root.CreateElement("Filters")
	filters.CreateAttr("dateRange", xmlText(rep.Filters.DateRange))
	if rep.Filters.StartDate != "" {
		filters.CreateAttr("startDate", rep.Filters.StartDate)
	}
	if rep.Filters.EndDate != "" {
		filters.CreateAttr("endDate", rep.Filters.EndDate)
	}

	cats := root.CreateElement("Categories")
	for _, c := range rep.SalesByCategory {
		el := cats.CreateElement("Category")
		if c.CategoryID != "" {
			el.CreateAttr("id", xmlText(c.CategoryID))
		}
		child(el, "Name", c.CategoryName)
		if c.CategoryDescription != "" {
			child(el, "Description", c.CategoryDescription)
		}
		child(el, "TotalQuantity", strconv.FormatInt(c.TotalQuantity, 10))
		child(el, "TotalRevenue", c.TotalRevenue.StringFixed(2))
		child(el, "ItemCount", strconv.Itoa(c.ItemCount))
		child(el, "SaleCount", strconv.Itoa(c.SaleCount))
		child(el, "AverageSaleValue", c.AverageSaleValue.StringFixed(2))
		child(el, "RevenuePercentage", c.RevenuePercentage.StringFixed(2))
	}

	s := root.CreateElement("Summary")
	child(s, "TotalCategories", strconv.Itoa(rep.Summary.TotalCategories))
	child(s, "TotalItems", strconv.Itoa(rep.Summary.TotalItems))
	child(s, "TotalQuantity", strconv.FormatInt(rep.Summary.TotalQuantity, 10))
	child(s, "TotalRevenue", rep.Summary.TotalRevenue.StringFixed(2))
	child(s, "TotalSales", strconv.Itoa(rep.Summary.TotalSales))
	child(s, "AverageRevenuePerCategory", rep.Summary.AverageRevenuePerCategory.StringFixed(2))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar reporte: %w", err)
	}
	return out, nil
}

func child(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(xmlText(value))
}

// xmlText elimina los caracteres que XML 1.0 no admite (controles salvo tab, LF y CR).
func xmlText(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r >= 0x20 && r <= 0xD7FF,
			r >= 0xE000 && r <= 0xFFFD,
			r >= 0x10000 && r <= 0x10FFFF:
			return r
		default:
			return -1
		}
	}, s)
}
