package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("inventario insuficiente")
	ErrMissingLocation    = errors.New("la solicitud requiere una ubicación")
	ErrIncompleteLocation = errors.New("todos los campos de la ubicación son obligatorios")
	ErrInvalidBackup      = errors.New("formato de respaldo inválido")
	ErrBackupRequired     = errors.New("debe generar un respaldo en esta sesión antes de restaurar")
	ErrRemoteFailure      = errors.New("fallo en el servicio remoto")
)
