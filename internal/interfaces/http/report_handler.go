package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supplysight-api/internal/application/dto"
	"github.com/jhoicas/supplysight-api/internal/application/report"
)

// ReportHandler expone el reporte PDF del snapshot de inventario.
type ReportHandler struct {
	uc *report.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.PDFUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GetInventoryReport godoc
// @Summary      Descargar el reporte de inventario en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) GetInventoryReport(c *fiber.Ctx) error {
	out, err := h.uc.GenerateInventoryReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(out)
}
