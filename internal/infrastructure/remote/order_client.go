package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/application/inventory"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

var _ inventory.OrderStorageClient = (*OrderClient)(nil)

// OrderClient adaptador del almacenamiento externo de órdenes. El espejo es
// best-effort: el caso de uso registra los fallos y continúa.
type OrderClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewOrderClient construye el adaptador.
func NewOrderClient(baseURL, apiKey string) *OrderClient {
	return &OrderClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type orderItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type orderPayload struct {
	ID                 string             `json:"id"`
	MerchantID         string             `json:"merchant_id"`
	Type               string             `json:"type"`
	Items              []orderItemPayload `json:"items"`
	TotalWeightKg      string             `json:"total_weight_kg"`
	PickupLocationID   string             `json:"pickup_location_id,omitempty"`
	DeliveryLocationID string             `json:"delivery_location_id,omitempty"`
	Status             string             `json:"status"`
	Fee                string             `json:"fee"`
	Date               time.Time          `json:"date"`
}

// CreateOrder publica la solicitud en el almacenamiento de órdenes.
// Un 409 del servicio (ID ya registrado) se reporta como domain.ErrConflict.
func (c *OrderClient) CreateOrder(ctx context.Context, req *entity.InventoryRequest) error {
	payload := toOrderPayload(req)
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("remote orders: serializar orden: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("remote orders: construir request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("remote orders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return fmt.Errorf("%w: orden %s ya registrada", domain.ErrConflict, req.ID)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("remote orders: POST /orders -> %d: %s", resp.StatusCode, snippet)
	}
	return nil
}

// ListOrders lista las órdenes del comerciante, más reciente primero
// (el orden lo garantiza el servicio).
func (c *OrderClient) ListOrders(ctx context.Context, merchantID string) ([]*entity.InventoryRequest, error) {
	endpoint := c.baseURL + "/orders?merchant_id=" + url.QueryEscape(merchantID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("remote orders: construir request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("remote orders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("remote orders: GET /orders -> %d: %s", resp.StatusCode, snippet)
	}

	var payloads []orderPayload
	if err := json.NewDecoder(resp.Body).Decode(&payloads); err != nil {
		return nil, fmt.Errorf("remote orders: decodificar respuesta: %w", err)
	}

	orders := make([]*entity.InventoryRequest, 0, len(payloads))
	for _, p := range payloads {
		orders = append(orders, fromOrderPayload(p))
	}
	return orders, nil
}

func (c *OrderClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
}

func toOrderPayload(req *entity.InventoryRequest) orderPayload {
	items := make([]orderItemPayload, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, orderItemPayload{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return orderPayload{
		ID:                 req.ID,
		MerchantID:         req.MerchantID,
		Type:               string(req.Type),
		Items:              items,
		TotalWeightKg:      req.TotalWeightKg.String(),
		PickupLocationID:   req.PickupLocationID,
		DeliveryLocationID: req.DeliveryLocationID,
		Status:             req.Status,
		Fee:                req.Fee.String(),
		Date:               req.Date,
	}
}

func fromOrderPayload(p orderPayload) *entity.InventoryRequest {
	items := make([]entity.RequestItem, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, entity.RequestItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	weight, _ := decimal.NewFromString(p.TotalWeightKg)
	fee, _ := decimal.NewFromString(p.Fee)
	return &entity.InventoryRequest{
		ID:                 p.ID,
		MerchantID:         p.MerchantID,
		Type:               entity.RequestType(p.Type),
		Items:              items,
		TotalWeightKg:      weight,
		PickupLocationID:   p.PickupLocationID,
		DeliveryLocationID: p.DeliveryLocationID,
		Status:             p.Status,
		Fee:                fee,
		Date:               p.Date,
	}
}
