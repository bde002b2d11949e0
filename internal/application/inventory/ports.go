package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// ErrRemoteNotFound lo devuelve el cliente remoto cuando el lote no existe en
// el servicio de inventario. El despacho lo recupera con create + un reintento.
var ErrRemoteNotFound = errors.New("lote no existe en el servicio remoto")

// RemoteAdjustment registro de ajuste embebido en una actualización parcial
// remota (lastAdjustment del payload).
type RemoteAdjustment struct {
	Type     entity.AdjustmentReason
	Quantity int64 // delta con signo
	Date     time.Time
	Notes    string
}

// BatchPatch actualización parcial de un lote en el servicio remoto.
type BatchPatch struct {
	Quantity       *int64
	LastAdjustment *RemoteAdjustment
}

// RemoteInventoryClient puerto hacia el endpoint externo de mutación de
// inventario. UpdateBatch devuelve ErrRemoteNotFound si el ID no existe.
type RemoteInventoryClient interface {
	UpdateBatch(ctx context.Context, batchID string, patch BatchPatch) error
	CreateBatch(ctx context.Context, batch *entity.InventoryBatch) error
}

// OrderStorageClient puerto hacia el endpoint externo de órdenes. Create
// rechaza IDs duplicados con conflicto; List devuelve por fecha descendente.
// El espejo de solicitudes es best-effort: sus fallos se registran, nunca
// tumban la creación local.
type OrderStorageClient interface {
	CreateOrder(ctx context.Context, req *entity.InventoryRequest) error
	ListOrders(ctx context.Context, merchantID string) ([]*entity.InventoryRequest, error)
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que solicitud y cargo se persistan
// como una unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		requestRepo repository.RequestRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}
