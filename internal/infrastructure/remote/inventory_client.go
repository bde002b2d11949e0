// Package remote implementa los clientes HTTP hacia los servicios externos:
// el endpoint de mutación de inventario y el almacenamiento de órdenes.
// Usa net/http de la librería estándar; no requiere SDK.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/bodega-api/internal/application/inventory"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que InventoryClient implementa el puerto.
var _ inventory.RemoteInventoryClient = (*InventoryClient)(nil)

// InventoryClient adaptador del endpoint remoto de mutación de inventario.
// El servicio acepta actualizaciones parciales por ID de lote (con
// lastAdjustment embebido) y responde 404 cuando el lote no existe, lo que
// dispara el fallback create+retry del caso de uso.
type InventoryClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewInventoryClient construye el adaptador.
func NewInventoryClient(baseURL, apiKey string) *InventoryClient {
	return &InventoryClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ── Estructuras del protocolo ─────────────────────────────────────────────────

type lastAdjustmentPayload struct {
	Type     string `json:"type"`
	Quantity int64  `json:"quantity"`
	Date     string `json:"date"` // YYYY-MM-DD
	Notes    string `json:"notes,omitempty"`
}

type batchPayload struct {
	ID             string                 `json:"id,omitempty"`
	ProductID      string                 `json:"product_id,omitempty"`
	MerchantID     string                 `json:"merchant_id,omitempty"`
	Quantity       *int64                 `json:"quantity,omitempty"`
	Location       string                 `json:"location,omitempty"`
	MinStockLevel  int64                  `json:"min_stock_level,omitempty"`
	MaxStockLevel  int64                  `json:"max_stock_level,omitempty"`
	ExpiryDate     string                 `json:"expiry_date,omitempty"`
	ExpiryStatus   string                 `json:"expiry_status,omitempty"`
	LastAdjustment *lastAdjustmentPayload `json:"last_adjustment,omitempty"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// UpdateBatch envía una actualización parcial del lote. Devuelve
// inventory.ErrRemoteNotFound si el servicio responde 404.
func (c *InventoryClient) UpdateBatch(ctx context.Context, batchID string, patch inventory.BatchPatch) error {
	payload := batchPayload{Quantity: patch.Quantity}
	if patch.LastAdjustment != nil {
		payload.LastAdjustment = &lastAdjustmentPayload{
			Type:     string(patch.LastAdjustment.Type),
			Quantity: patch.LastAdjustment.Quantity,
			Date:     patch.LastAdjustment.Date.Format("2006-01-02"),
			Notes:    patch.LastAdjustment.Notes,
		}
	}
	return c.do(ctx, http.MethodPatch, "/inventory/batches/"+batchID, payload)
}

// CreateBatch crea el lote completo en el servicio remoto.
func (c *InventoryClient) CreateBatch(ctx context.Context, batch *entity.InventoryBatch) error {
	qty := batch.Quantity
	payload := batchPayload{
		ID:            batch.ID,
		ProductID:     batch.ProductID,
		MerchantID:    batch.MerchantID,
		Quantity:      &qty,
		Location:      batch.Location,
		MinStockLevel: batch.MinStockLevel,
		MaxStockLevel: batch.MaxStockLevel,
		ExpiryDate:    batch.ExpiryDate,
		ExpiryStatus:  batch.ExpiryStatus,
	}
	return c.do(ctx, http.MethodPost, "/inventory/batches", payload)
}

func (c *InventoryClient) do(ctx context.Context, method, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("remote inventory: serializar request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("remote inventory: construir request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("remote inventory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return inventory.ErrRemoteNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("remote inventory: %s %s -> %d: %s", method, path, resp.StatusCode, snippet)
	}
	return nil
}
