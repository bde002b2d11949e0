package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// BatchRepository define el puerto de persistencia local de lotes de inventario.
// Las lecturas de validación y el clasificador consultan aquí; la mutación de
// salida (outbound) va además contra el servicio remoto de inventario.
type BatchRepository interface {
	Create(batch *entity.InventoryBatch) error
	GetByID(id string) (*entity.InventoryBatch, error)
	// GetByMerchantAndProduct devuelve el lote del comerciante para un producto,
	// o nil si no existe.
	GetByMerchantAndProduct(merchantID, productID string) (*entity.InventoryBatch, error)
	ListByMerchant(merchantID string) ([]*entity.InventoryBatch, error)
	Update(batch *entity.InventoryBatch) error
}
