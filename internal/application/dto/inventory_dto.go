package dto

import "time"

// AdjustStockRequest body para POST /api/inventory/adjustments.
// Quantity llega como texto libre del formulario; el motor la parsea como
// entero y normaliza el signo según Reason.
type AdjustStockRequest struct {
	BatchID  string `json:"batch_id"`
	Quantity string `json:"quantity"`
	Reason   string `json:"reason"` // adjustment, damage, loss, sale, purchase, return, correction, found
	Notes    string `json:"notes,omitempty"`
}

// TransactionResponse registro de auditoría expuesto por la API.
type TransactionResponse struct {
	ID         string    `json:"id"`
	MerchantID string    `json:"merchant_id"`
	ProductID  string    `json:"product_id"`
	Type       string    `json:"type"`
	Quantity   int64     `json:"quantity"` // delta con signo
	Date       time.Time `json:"date"`
	Notes      string    `json:"notes"`
}

// BatchResponse lote con su estado derivado (umbral + vencimiento).
type BatchResponse struct {
	ID            string `json:"id"`
	ProductID     string `json:"product_id"`
	MerchantID    string `json:"merchant_id"`
	Quantity      int64  `json:"quantity"`
	Location      string `json:"location"`
	MinStockLevel int64  `json:"min_stock_level"`
	MaxStockLevel int64  `json:"max_stock_level"`
	IsLowStock    bool   `json:"is_low_stock"`
	IsOverStock   bool   `json:"is_over_stock"`
	ExpiryLabel   string `json:"expiry_label"`
	ExpiryStatus  string `json:"expiry_status,omitempty"`
	StatusVariant string `json:"status_variant"`
	StatusText    string `json:"status_text"`
}

// AdjustmentResponse resultado de un ajuste: lote actualizado + transacción creada.
type AdjustmentResponse struct {
	Batch       BatchResponse       `json:"batch"`
	Transaction TransactionResponse `json:"transaction"`
}

// ProductGroupResponse lotes agrupados por producto para el listado colapsable.
type ProductGroupResponse struct {
	ProductID     string          `json:"product_id"`
	TotalQuantity int64           `json:"total_quantity"`
	Batches       []BatchResponse `json:"batches"`
}

// InventoryViewResponse vista completa de inventario de un comerciante.
type InventoryViewResponse struct {
	Groups []ProductGroupResponse `json:"groups"`
	Total  int                    `json:"total"`
}
