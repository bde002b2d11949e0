package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestItemDTO línea de una solicitud de entrada/salida.
type RequestItemDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// SubmitRequestRequest body para POST /api/requests.
// LocationID es la ubicación de recogida (inbound) o de entrega (outbound).
type SubmitRequestRequest struct {
	Type       string           `json:"type"` // inbound | outbound
	Items      []RequestItemDTO `json:"items"`
	LocationID string           `json:"location_id"`
}

// RequestResponse solicitud creada/listada.
type RequestResponse struct {
	ID                 string           `json:"id"`
	MerchantID         string           `json:"merchant_id"`
	Type               string           `json:"type"`
	Items              []RequestItemDTO `json:"items"`
	TotalWeightKg      decimal.Decimal  `json:"total_weight_kg"`
	PickupLocationID   string           `json:"pickup_location_id,omitempty"`
	DeliveryLocationID string           `json:"delivery_location_id,omitempty"`
	Status             string           `json:"status"`
	Fee                decimal.Decimal  `json:"fee"`
	Date               time.Time        `json:"date"`
}

// RequestListResponse listado paginado de solicitudes.
type RequestListResponse struct {
	Items []RequestResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// UpdateRequestStatusRequest body para PATCH /api/admin/requests/:id/status.
type UpdateRequestStatusRequest struct {
	Status string `json:"status"`
}
