package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment cargo cobrado a un comerciante por una solicitud de inventario.
// Se crea exactamente uno por solicitud, en la misma transacción de BD.
type Payment struct {
	ID         string
	MerchantID string
	RequestID  string
	Amount     decimal.Decimal
	Date       time.Time
}

// PaymentSummary agregado de pagos por comerciante (vista de administración).
type PaymentSummary struct {
	MerchantID   string
	MerchantName string
	Count        int64
	Total        decimal.Decimal
}
