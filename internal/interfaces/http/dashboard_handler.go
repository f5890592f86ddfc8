package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voese/voesesystem-api/internal/application/usecase"
)

// DashboardHandler maneja los endpoints del resumen financiero.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen financiero del mes seleccionado.
// GET /api/dashboard?mes=YYYY-MM (mes vacío = mes en curso)
//
// Respuesta: DashboardSummaryDTO (unidades, materiales, gastos de
// fabricación, costo unitario, ventas del mes, gastos personales, efectivo
// acumulado, meses disponibles y series de tendencia de 6 meses).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context(), c.Query("mes"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetMonths devuelve los meses con registros más el mes en curso, del más
// reciente al más antiguo. GET /api/meses
func (h *DashboardHandler) GetMonths(c *fiber.Ctx) error {
	meses, err := h.uc.AvailableMonths(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"meses": meses})
}
