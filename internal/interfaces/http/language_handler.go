package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// LanguageHandler maneja las peticiones HTTP para Language (protegido).
type LanguageHandler struct {
	uc *usecase.LanguageUseCase
}

// NewLanguageHandler construye el handler.
func NewLanguageHandler(uc *usecase.LanguageUseCase) *LanguageHandler {
	return &LanguageHandler{uc: uc}
}

// Create godoc
// @Summary      Crear idioma
// @Tags         languages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLanguageRequest  true  "Datos del idioma"
// @Success      201   {object}  dto.LanguageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/languages [post]
func (h *LanguageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLanguageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code y name son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código de idioma ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar idiomas
// @Tags         languages
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LanguageResponse
// @Router       /api/languages [get]
func (h *LanguageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar idioma
// @Tags         languages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del idioma"
// @Param        body  body  dto.UpdateLanguageRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.LanguageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/languages/{id} [put]
func (h *LanguageHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateLanguageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código de idioma ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "idioma no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar idioma
// @Tags         languages
// @Security     Bearer
// @Param        id  path  string  true  "ID del idioma"
// @Success      204
// @Router       /api/languages/{id} [delete]
func (h *LanguageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
