package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentResponse cargo individual por solicitud.
type PaymentResponse struct {
	ID         string          `json:"id"`
	MerchantID string          `json:"merchant_id"`
	RequestID  string          `json:"request_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
}

// PaymentSummaryResponse agregado de cargos por comerciante (admin).
type PaymentSummaryResponse struct {
	MerchantID   string          `json:"merchant_id"`
	MerchantName string          `json:"merchant_name,omitempty"`
	Count        int64           `json:"count"`
	Total        decimal.Decimal `json:"total"`
}
