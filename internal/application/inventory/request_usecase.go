package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	domaininv "github.com/jhoicas/bodega-api/internal/domain/inventory"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

// RequestUseCase construye solicitudes de entrada/salida de mercancía:
// valida, calcula tarifa por peso y, para outbound, descuenta el inventario
// origen contra el servicio remoto antes de crear el registro.
type RequestUseCase struct {
	batchRepo    repository.BatchRepository
	txRepo       repository.TransactionRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	requestRepo  repository.RequestRepository // lecturas y cambio de estado (pool)
	remote       RemoteInventoryClient
	orders       OrderStorageClient // puede ser nil (espejo deshabilitado)
	txRunner     TxRunner
	log          *logger.Logger
}

// NewRequestUseCase construye el caso de uso. orders admite nil.
func NewRequestUseCase(
	batchRepo repository.BatchRepository,
	txRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	requestRepo repository.RequestRepository,
	remote RemoteInventoryClient,
	orders OrderStorageClient,
	txRunner TxRunner,
	log *logger.Logger,
) *RequestUseCase {
	return &RequestUseCase{
		batchRepo:    batchRepo,
		txRepo:       txRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		requestRepo:  requestRepo,
		remote:       remote,
		orders:       orders,
		txRunner:     txRunner,
		log:          log,
	}
}

// SubmitRequest valida y crea una solicitud. La secuencia de validación corta
// en el primer fallo, en este orden: comerciante -> ubicación -> ítems ->
// inventario disponible (solo outbound). Antes de un ErrInsufficientStock no
// se ha mutado nada.
//
// El despacho outbound es secuencial por ítem y no transaccional entre ítems:
// si el ítem k falla, los ítems 1..k-1 ya quedaron descontados en el remoto y
// no se compensan (hueco de consistencia documentado y conservado).
func (uc *RequestUseCase) SubmitRequest(ctx context.Context, merchantID string, in dto.SubmitRequestRequest) (*dto.RequestResponse, error) {
	// 1. Comerciante autenticado.
	if merchantID == "" {
		return nil, domain.ErrUnauthorized
	}

	reqType := entity.RequestType(in.Type)
	if !reqType.Valid() {
		return nil, domain.ErrInvalidInput
	}

	// 2. Ubicación presente para el tipo (pickup inbound, delivery outbound).
	if in.LocationID == "" {
		return nil, domain.ErrMissingLocation
	}
	loc, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil || loc.MerchantID != merchantID {
		return nil, domain.ErrMissingLocation
	}

	// 3. Cada ítem con producto y cantidad > 0.
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	// 4. Solo outbound: lo solicitado no puede exceder lo disponible. Falla
	// antes de cualquier mutación.
	var outBatches []*entity.InventoryBatch
	if reqType == entity.RequestOutbound {
		outBatches = make([]*entity.InventoryBatch, 0, len(in.Items))
		for _, item := range in.Items {
			batch, err := uc.batchRepo.GetByMerchantAndProduct(merchantID, item.ProductID)
			if err != nil {
				return nil, err
			}
			if batch == nil || item.Quantity > batch.Quantity {
				return nil, domain.ErrInsufficientStock
			}
			outBatches = append(outBatches, batch)
		}
	}

	totalWeight := uc.totalWeightKg(in.Items)
	fee := domaininv.RequestFee(totalWeight)

	now := time.Now()
	req := &entity.InventoryRequest{
		ID:            uuid.New().String(),
		MerchantID:    merchantID,
		Type:          reqType,
		Items:         toEntityItems(in.Items),
		TotalWeightKg: totalWeight,
		Status:        entity.RequestStatusPending,
		Fee:           fee,
		Date:          now,
		CreatedAt:     now,
	}
	if reqType == entity.RequestInbound {
		req.PickupLocationID = loc.ID
	} else {
		req.DeliveryLocationID = loc.ID
	}

	// Despacho outbound: descuenta el inventario origen ítem por ítem.
	if reqType == entity.RequestOutbound {
		for i, item := range in.Items {
			if err := uc.fulfillOutboundItem(ctx, outBatches[i], item, req.ID, now); err != nil {
				return nil, err
			}
		}
	}

	// Solicitud y cargo se escriben como unidad.
	payment := &entity.Payment{
		ID:         uuid.New().String(),
		MerchantID: merchantID,
		RequestID:  req.ID,
		Amount:     fee,
		Date:       now,
	}
	err = uc.txRunner.Run(ctx, func(
		requestRepo repository.RequestRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		if err := requestRepo.Create(req); err != nil {
			return err
		}
		return paymentRepo.Create(payment)
	})
	if err != nil {
		return nil, err
	}

	// Espejo en el almacenamiento de órdenes: best-effort, nunca tumba la
	// solicitud ya creada.
	if uc.orders != nil {
		if err := uc.orders.CreateOrder(ctx, req); err != nil {
			uc.log.Warn().Err(err).Str("request_id", req.ID).Msg("espejo de orden falló")
		}
	}

	return toRequestResponse(req), nil
}

// fulfillOutboundItem aplica el descuento de un ítem contra el servicio remoto
// y refleja el resultado en el lote local + log de auditoría.
//
// Protocolo remoto: actualización parcial con lastAdjustment embebido; si el
// remoto responde not-found, se crea el lote ya descontado y se reintenta la
// actualización una única vez. Un segundo fallo sube al caller sin más
// reintentos.
func (uc *RequestUseCase) fulfillOutboundItem(ctx context.Context, batch *entity.InventoryBatch, item dto.RequestItemDTO, requestID string, now time.Time) error {
	newQty := batch.Quantity - item.Quantity
	adj := &RemoteAdjustment{
		Type:     entity.ReasonOutbound,
		Quantity: -item.Quantity,
		Date:     now,
		Notes:    entity.ReasonOutbound.Label(),
	}
	patch := BatchPatch{Quantity: &newQty, LastAdjustment: adj}

	err := uc.remote.UpdateBatch(ctx, batch.ID, patch)
	if errors.Is(err, ErrRemoteNotFound) {
		uc.log.Warn().Str("batch_id", batch.ID).Msg("lote remoto ausente, creando y reintentando")
		remoteBatch := *batch
		remoteBatch.Quantity = newQty
		remoteBatch.UpdatedAt = now
		if err := uc.remote.CreateBatch(ctx, &remoteBatch); err != nil {
			return fmt.Errorf("%w: crear lote %s: %v", domain.ErrRemoteFailure, batch.ID, err)
		}
		err = uc.remote.UpdateBatch(ctx, batch.ID, patch)
	}
	if err != nil {
		return fmt.Errorf("%w: actualizar lote %s: %v", domain.ErrRemoteFailure, batch.ID, err)
	}

	// Refleja el descuento en el espejo local y deja rastro de auditoría.
	batch.Quantity = newQty
	batch.UpdatedAt = now
	if err := uc.batchRepo.Update(batch); err != nil {
		return err
	}
	tx := &entity.Transaction{
		ID:         uuid.New().String(),
		MerchantID: batch.MerchantID,
		ProductID:  batch.ProductID,
		Type:       entity.ReasonOutbound,
		Quantity:   -item.Quantity,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Notes:      "Outbound request " + requestID,
		CreatedAt:  now,
	}
	return uc.txRepo.Create(tx)
}

// totalWeightKg suma cantidad x peso del producto; producto o peso faltante
// cuenta como 0.
func (uc *RequestUseCase) totalWeightKg(items []dto.RequestItemDTO) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil || product == nil {
			continue
		}
		total = total.Add(product.WeightKg.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return total
}

// ListForMerchant lista las solicitudes del comerciante, más recientes primero.
func (uc *RequestUseCase) ListForMerchant(ctx context.Context, merchantID string, page dto.PageRequest) (*dto.RequestListResponse, error) {
	if merchantID == "" {
		return nil, domain.ErrUnauthorized
	}
	page.DefaultPage()
	list, err := uc.listRequests(merchantID, page)
	if err != nil {
		return nil, err
	}
	return &dto.RequestListResponse{
		Items: list,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListAll lista todas las solicitudes (admin).
func (uc *RequestUseCase) ListAll(ctx context.Context, page dto.PageRequest) (*dto.RequestListResponse, error) {
	page.DefaultPage()
	list, err := uc.listRequests("", page)
	if err != nil {
		return nil, err
	}
	return &dto.RequestListResponse{
		Items: list,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListMirroredOrders consulta el espejo externo de órdenes para un
// comerciante (orden por fecha descendente lo garantiza el endpoint).
// Con el espejo deshabilitado devuelve lista vacía.
func (uc *RequestUseCase) ListMirroredOrders(ctx context.Context, merchantID string) ([]*entity.InventoryRequest, error) {
	if uc.orders == nil {
		return []*entity.InventoryRequest{}, nil
	}
	return uc.orders.ListOrders(ctx, merchantID)
}

// GetByID obtiene una solicitud (scope por comerciante; merchantID vacío = admin).
func (uc *RequestUseCase) GetByID(ctx context.Context, merchantID, requestID string) (*entity.InventoryRequest, error) {
	req, err := uc.requestRepo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if merchantID != "" && req.MerchantID != merchantID {
		return nil, domain.ErrForbidden
	}
	return req, nil
}

// UpdateStatus actualiza el estado de una solicitud (admin). Sin máquina de
// transiciones: las etapas posteriores a pending las maneja el operador.
func (uc *RequestUseCase) UpdateStatus(ctx context.Context, requestID, status string) error {
	switch status {
	case entity.RequestStatusPending, entity.RequestStatusCompleted, entity.RequestStatusCancelled:
	default:
		return domain.ErrInvalidInput
	}
	req, err := uc.requestRepo.GetByID(requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return domain.ErrNotFound
	}
	return uc.requestRepo.UpdateStatus(requestID, status)
}

func (uc *RequestUseCase) listRequests(merchantID string, page dto.PageRequest) ([]dto.RequestResponse, error) {
	var (
		reqs []*entity.InventoryRequest
		err  error
	)
	if merchantID == "" {
		reqs, err = uc.requestRepo.ListAll(page.Limit, page.Offset)
	} else {
		reqs, err = uc.requestRepo.ListByMerchant(merchantID, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.RequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, *toRequestResponse(r))
	}
	return out, nil
}

func toEntityItems(items []dto.RequestItemDTO) []entity.RequestItem {
	out := make([]entity.RequestItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.RequestItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}

func toRequestResponse(r *entity.InventoryRequest) *dto.RequestResponse {
	items := make([]dto.RequestItemDTO, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.RequestItemDTO{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &dto.RequestResponse{
		ID:                 r.ID,
		MerchantID:         r.MerchantID,
		Type:               string(r.Type),
		Items:              items,
		TotalWeightKg:      r.TotalWeightKg,
		PickupLocationID:   r.PickupLocationID,
		DeliveryLocationID: r.DeliveryLocationID,
		Status:             r.Status,
		Fee:                r.Fee,
		Date:               r.Date,
	}
}
