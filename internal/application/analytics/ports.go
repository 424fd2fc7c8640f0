package analytics

import "github.com/jhoicas/ventas-api/internal/application/dto"

// SalesByItemPDFGenerator renderiza el reporte de ventas por artículo como PDF.
type SalesByItemPDFGenerator interface {
	SalesByItemPDF(report *dto.SalesByItemReportDTO) ([]byte, error)
}

// SalesByCategoryXMLExporter serializa el reporte de ventas por categoría como XML.
type SalesByCategoryXMLExporter interface {
	SalesByCategoryXML(report *dto.SalesByCategoryReportDTO) ([]byte, error)
}
