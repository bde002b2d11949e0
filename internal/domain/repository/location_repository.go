package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia de ubicaciones de
// recogida/entrega (scope por comerciante).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	// ListByMerchant preserva el orden de creación.
	ListByMerchant(merchantID string) ([]*entity.Location, error)
}
