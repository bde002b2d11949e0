package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	WeightKg      decimal.Decimal `json:"weight_kg"`
	MinStockLevel int64           `json:"min_stock_level"`
	MaxStockLevel int64           `json:"max_stock_level"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	WeightKg      *decimal.Decimal `json:"weight_kg,omitempty"`
	MinStockLevel *int64           `json:"min_stock_level,omitempty"`
	MaxStockLevel *int64           `json:"max_stock_level,omitempty"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID            string          `json:"id"`
	MerchantID    string          `json:"merchant_id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	WeightKg      decimal.Decimal `json:"weight_kg"`
	MinStockLevel int64           `json:"min_stock_level"`
	MaxStockLevel int64           `json:"max_stock_level"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
