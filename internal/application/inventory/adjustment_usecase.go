package inventory

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	domaininv "github.com/jhoicas/bodega-api/internal/domain/inventory"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// AdjustmentUseCase motor de ajustes de cantidad: normaliza el signo según el
// motivo, aplica el delta al lote y emite la transacción de auditoría.
type AdjustmentUseCase struct {
	batchRepo repository.BatchRepository
	txRepo    repository.TransactionRepository
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(batchRepo repository.BatchRepository, txRepo repository.TransactionRepository) *AdjustmentUseCase {
	return &AdjustmentUseCase{batchRepo: batchRepo, txRepo: txRepo}
}

// ApplyAdjustment parsea la cantidad capturada, calcula el delta efectivo y lo
// aplica. La cantidad resultante puede quedar negativa: no se trunca en cero
// (comportamiento histórico que se conserva a propósito).
//
// Persiste primero el lote y luego la transacción, sin transacción de BD que
// los envuelva: si la segunda escritura falla ambos divergen y el caller debe
// reintentar la pareja completa como unidad lógica.
func (uc *AdjustmentUseCase) ApplyAdjustment(ctx context.Context, merchantID string, in dto.AdjustStockRequest) (*dto.AdjustmentResponse, error) {
	if merchantID == "" {
		return nil, domain.ErrUnauthorized
	}

	raw, err := strconv.ParseInt(strings.TrimSpace(in.Quantity), 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	reason := entity.AdjustmentReason(in.Reason)
	// Outbound está reservado al despacho de solicitudes, no al formulario.
	if !reason.Valid() || reason == entity.ReasonOutbound {
		return nil, domain.ErrInvalidInput
	}

	batch, err := uc.batchRepo.GetByID(in.BatchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	if batch.MerchantID != merchantID {
		return nil, domain.ErrForbidden
	}

	delta, err := domaininv.EffectiveDelta(reason, raw)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	batch.Quantity += delta
	batch.UpdatedAt = now

	notes := strings.TrimSpace(in.Notes)
	if notes == "" {
		notes = reason.Label()
	}

	tx := &entity.Transaction{
		ID:         uuid.New().String(),
		MerchantID: merchantID,
		ProductID:  batch.ProductID,
		Type:       reason,
		Quantity:   delta,
		// Granularidad de día en la fecha del movimiento.
		Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Notes:     notes,
		CreatedAt: now,
	}

	if err := uc.batchRepo.Update(batch); err != nil {
		return nil, err
	}
	if err := uc.txRepo.Create(tx); err != nil {
		return nil, err
	}

	return &dto.AdjustmentResponse{
		Batch:       toBatchResponse(batch),
		Transaction: toTransactionResponse(tx),
	}, nil
}

// ListTransactions lista el log de auditoría del comerciante, opcionalmente
// acotado por rango de fechas o filtrado por producto.
func (uc *AdjustmentUseCase) ListTransactions(ctx context.Context, merchantID, productID string, from, to *time.Time, page dto.PageRequest) ([]dto.TransactionResponse, error) {
	if merchantID == "" {
		return nil, domain.ErrUnauthorized
	}
	page.DefaultPage()

	var (
		list []*entity.Transaction
		err  error
	)
	if productID != "" {
		list, err = uc.txRepo.ListByProduct(productID, page.Limit, page.Offset)
	} else {
		list, err = uc.txRepo.ListByMerchant(merchantID, from, to, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		// El filtro por producto no pasa por el scope de comerciante en la
		// consulta; se aplica aquí.
		if tx.MerchantID != merchantID {
			continue
		}
		out = append(out, toTransactionResponse(tx))
	}
	return out, nil
}

func toTransactionResponse(tx *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:         tx.ID,
		MerchantID: tx.MerchantID,
		ProductID:  tx.ProductID,
		Type:       string(tx.Type),
		Quantity:   tx.Quantity,
		Date:       tx.Date,
		Notes:      tx.Notes,
	}
}
