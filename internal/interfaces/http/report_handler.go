package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/ventas-api/internal/application/analytics"
	"github.com/jhoicas/ventas-api/internal/application/dto"
)

// ReportHandler maneja los reportes de ventas y sus exportaciones.
type ReportHandler struct {
	uc *appanalytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesByItem godoc
// @Summary      Ventas por artículo
// @Description  Ventas agrupadas por artículo, de mayor a menor ingreso.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Fin inclusivo (YYYY-MM-DD)"
// @Param        category   query  string  false  "ID de categoría"
// @Success      200  {object}  dto.SalesByItemReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales-by-item [get]
func (h *ReportHandler) SalesByItem(c *fiber.Ctx) error {
	var req dto.SalesReportRequest
	if err := parseQuery(c, &req); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.SalesByItem(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SalesByDate godoc
// @Summary      Ventas por fecha
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Fin inclusivo (YYYY-MM-DD)"
// @Param        groupBy    query  string  false  "day | week | month"  default(day)
// @Success      200  {object}  dto.SalesByDateReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales-by-date [get]
func (h *ReportHandler) SalesByDate(c *fiber.Ctx) error {
	var req dto.SalesReportRequest
	if err := parseQuery(c, &req); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.SalesByDate(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SalesByCategory godoc
// @Summary      Ventas por categoría con participación porcentual
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Fin inclusivo (YYYY-MM-DD)"
// @Success      200  {object}  dto.SalesByCategoryReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales-by-category [get]
func (h *ReportHandler) SalesByCategory(c *fiber.Ctx) error {
	var req dto.SalesReportRequest
	if err := parseQuery(c, &req); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.SalesByCategory(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Estadísticas globales
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.DashboardStats(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SalesByItemPDF godoc
// @Summary      Ventas por artículo en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        startDate  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Fin inclusivo (YYYY-MM-DD)"
// @Param        category   query  string  false  "ID de categoría"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales-by-item/pdf [get]
func (h *ReportHandler) SalesByItemPDF(c *fiber.Ctx) error {
	var req dto.SalesReportRequest
	if err := parseQuery(c, &req); err != nil {
		return writeError(c, err)
	}
	doc, err := h.uc.SalesByItemPDF(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ventas-por-articulo.pdf"`)
	return c.Send(doc)
}

// SalesByCategoryXML godoc
// @Summary      Ventas por categoría en XML
// @Tags         reports
// @Security     Bearer
// @Produce      application/xml
// @Param        startDate  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Fin inclusivo (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales-by-category/xml [get]
func (h *ReportHandler) SalesByCategoryXML(c *fiber.Ctx) error {
	var req dto.SalesReportRequest
	if err := parseQuery(c, &req); err != nil {
		return writeError(c, err)
	}
	doc, err := h.uc.SalesByCategoryXML(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ventas-por-categoria.xml"`)
	return c.Send(doc)
}
