package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un comerciante.
// WeightKg alimenta el cálculo de tarifa de las solicitudes (peso faltante = 0).
// Los umbrales son los valores por defecto que heredan los lotes nuevos.
type Product struct {
	ID            string
	MerchantID    string
	SKU           string // código único por comerciante
	Name          string
	WeightKg      decimal.Decimal
	MinStockLevel int64
	MaxStockLevel int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
