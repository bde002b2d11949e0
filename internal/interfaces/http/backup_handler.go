package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bodega-api/internal/application/backup"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
)

// BackupHandler exporta y restaura el estado de la aplicación (admin).
type BackupHandler struct {
	uc *backup.UseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.UseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar respaldo (admin)
// @Description  Serializa todo el estado persistido como un objeto JSON.
//
//	Con merchant_id filtra los valores tipo arreglo a los elementos
//	de ese comerciante.
//
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Param        merchant_id  query  string  false  "Limitar a un comerciante"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/backup/export [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.Export(c.Query("merchant_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="bodega-backup.json"`)
	return c.Send(data)
}

// Restore godoc
// @Summary      Restaurar respaldo (admin)
// @Description  Sobrescribe el estado clave por clave. Requiere haber
//
//	exportado un respaldo antes en la misma sesión del proceso.
//
// @Tags         backup
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/backup/restore [post]
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	err := h.uc.Restore(c.Body())
	if err != nil {
		if err == domain.ErrBackupRequired {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "BACKUP_REQUIRED", Message: "exporte un respaldo antes de restaurar"})
		}
		if err == domain.ErrInvalidBackup {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BACKUP", Message: "el archivo no es un respaldo válido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "estado restaurado"})
}
