package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// RequestRepository define el puerto de persistencia de solicitudes de
// entrada/salida de mercancía (con sus ítems).
type RequestRepository interface {
	Create(req *entity.InventoryRequest) error
	GetByID(id string) (*entity.InventoryRequest, error)
	// ListByMerchant lista solicitudes del comerciante, más recientes primero.
	ListByMerchant(merchantID string, limit, offset int) ([]*entity.InventoryRequest, error)
	ListAll(limit, offset int) ([]*entity.InventoryRequest, error)
	UpdateStatus(id, status string) error
}
