package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/calculator"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// CalculatorHandler API pública que consume el widget de la calculadora.
// No requiere autenticación.
type CalculatorHandler struct {
	dataUC *calculator.CalculatorDataUseCase
	sendUC *calculator.SendCalculationUseCase
}

// NewCalculatorHandler construye el handler.
func NewCalculatorHandler(dataUC *calculator.CalculatorDataUseCase, sendUC *calculator.SendCalculationUseCase) *CalculatorHandler {
	return &CalculatorHandler{dataUC: dataUC, sendUC: sendUC}
}

// Data godoc
// @Summary      Snapshot del catálogo para el widget
// @Description  Idiomas, monedas, unidades y categorías con sus servicios.
// @Tags         calculator
// @Produce      json
// @Success      200  {object}  dto.CalculatorDataResponse
// @Router       /api/v1/calculator-data [get]
func (h *CalculatorHandler) Data(c *fiber.Ctx) error {
	out, err := h.dataUC.Snapshot()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SendCalculation godoc
// @Summary      Enviar el cálculo por correo
// @Description  Valida el payload y envía la cotización al correo del usuario.
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendCalculationRequest  true  "Cálculo del widget"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.StatusResponse
// @Failure      500   {object}  dto.StatusResponse
// @Router       /api/v1/send-calculation [post]
func (h *CalculatorHandler) SendCalculation(c *fiber.Ctx) error {
	var in dto.SendCalculationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body."))
	}
	if err := h.sendUC.Send(c.UserContext(), in); err != nil {
		if domain.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to send email."))
	}
	return c.JSON(dto.OK("Calculation successfully sent to your email."))
}
