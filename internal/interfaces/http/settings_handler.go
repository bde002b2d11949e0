package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bodega-api/internal/application/backup"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
)

// SettingsHandler preferencias de interfaz persistidas en el estado de la app.
type SettingsHandler struct {
	uc *backup.UseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *backup.UseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetTheme godoc
// @Summary      Tema de interfaz
// @Description  Devuelve la preferencia de tema guardada (vacío si no hay).
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ThemeResponse
// @Router       /api/settings/theme [get]
func (h *SettingsHandler) GetTheme(c *fiber.Ctx) error {
	theme, err := h.uc.Theme()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ThemeResponse{Theme: theme})
}

// SetTheme godoc
// @Summary      Cambiar tema de interfaz
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ThemeRequest  true  "light o dark"
// @Success      200  {object}  dto.ThemeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/settings/theme [put]
func (h *SettingsHandler) SetTheme(c *fiber.Ctx) error {
	var body dto.ThemeRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetTheme(body.Theme); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tema desconocido: use light o dark"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ThemeResponse{Theme: body.Theme})
}

// ResetTheme godoc
// @Summary      Restablecer tema de interfaz
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/settings/theme [delete]
func (h *SettingsHandler) ResetTheme(c *fiber.Ctx) error {
	if err := h.uc.ResetTheme(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "tema restablecido"})
}
