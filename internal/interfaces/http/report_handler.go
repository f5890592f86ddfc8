package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/voese/voesesystem-api/internal/application/dto"
	"github.com/voese/voesesystem-api/internal/application/reporte"
)

// ReportHandler maneja la generación y descarga de extractos PDF.
type ReportHandler struct {
	uc *reporte.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporte.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ExportMonthly godoc
// @Summary      Generar extracto mensual en PDF
// @Tags         reportes
// @Produce      application/pdf
// @Param        mes  path  string  true  "Mes (YYYY-MM)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/mes/{mes} [post]
func (h *ReportHandler) ExportMonthly(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.ExportMonthly(c.Context(), c.Params("mes"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// ExportAnnual godoc
// @Summary      Generar resumen anual en PDF
// @Tags         reportes
// @Produce      application/pdf
// @Param        anio  path  int  true  "Año (YYYY)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/anual/{anio} [post]
func (h *ReportHandler) ExportAnnual(c *fiber.Ctx) error {
	anio, err := strconv.Atoi(c.Params("anio"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "año inválido"})
	}
	pdf, filename, err := h.uc.ExportAnnual(c.Context(), anio)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
