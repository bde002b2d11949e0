package entity

import "time"

// Estados de vencimiento reportados sobre un lote.
const (
	ExpiryStatusExpired       = "expired"
	ExpiryStatusAboutToExpire = "about_to_expire"
)

// InventoryBatch representa un lote de inventario: la existencia de un producto
// para un comerciante en una ubicación concreta (puede haber varios lotes por
// producto con distintos vencimientos). Identidad = ID.
// Quantity es entera y con signo: una deducción puede dejarla negativa (se
// conserva el comportamiento histórico, no se trunca en cero).
type InventoryBatch struct {
	ID            string
	ProductID     string
	MerchantID    string
	Quantity      int64
	Location      string
	MinStockLevel int64  // 0 = umbral no configurado
	MaxStockLevel int64  // 0 = umbral no configurado
	ExpiryDate    string // fecha cruda tal como fue capturada; puede ser vacía
	ExpiryStatus  string // "", "expired" o "about_to_expire"
	UpdatedAt     time.Time
}
