package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voese/voesesystem-api/internal/application/dto"
	"github.com/voese/voesesystem-api/internal/application/usecase"
)

// ProductionHandler maneja las peticiones HTTP para producciones.
type ProductionHandler struct {
	uc *usecase.ProductionUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *usecase.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar corrida de producción
// @Tags         producciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterProductionRequest  true  "Datos de la producción (mes vacío = mes en curso)"
// @Success      201   {object}  dto.ProductionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/producciones [post]
func (h *ProductionHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar producciones
// @Tags         producciones
// @Produce      json
// @Param        mes  query  string  false  "Filtrar por mes (YYYY-MM)"
// @Success      200  {object}  dto.ProductionListResponse
// @Router       /api/producciones [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("mes"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
