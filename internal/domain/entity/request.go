package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestType tipo cerrado para la dirección de una solicitud de inventario.
type RequestType string

const (
	RequestInbound  RequestType = "inbound"  // mercancía entrando a la bodega
	RequestOutbound RequestType = "outbound" // mercancía saliendo; descuenta inventario origen
)

// Valid reporta si el tipo pertenece al conjunto cerrado.
func (t RequestType) Valid() bool {
	return t == RequestInbound || t == RequestOutbound
}

// Estados de una solicitud. Las transiciones posteriores a "pending" las maneja
// el operador de bodega; aquí no hay máquina de estados.
const (
	RequestStatusPending   = "pending"
	RequestStatusCompleted = "completed"
	RequestStatusCancelled = "cancelled"
)

// RequestItem línea de una solicitud: producto y cantidad solicitada (> 0).
type RequestItem struct {
	ProductID string
	Quantity  int64
}

// InventoryRequest solicitud de entrada o salida de mercancía de un comerciante.
// Exactamente uno de PickupLocationID / DeliveryLocationID está poblado según
// el tipo: pickup para inbound, delivery para outbound; el otro queda vacío.
type InventoryRequest struct {
	ID                 string
	MerchantID         string
	Type               RequestType
	Items              []RequestItem
	TotalWeightKg      decimal.Decimal
	PickupLocationID   string
	DeliveryLocationID string
	Status             string
	Fee                decimal.Decimal
	Date               time.Time
	CreatedAt          time.Time
}

// LocationID devuelve la ubicación poblada según el tipo de solicitud.
func (r *InventoryRequest) LocationID() string {
	if r.Type == RequestInbound {
		return r.PickupLocationID
	}
	return r.DeliveryLocationID
}
