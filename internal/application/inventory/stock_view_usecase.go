package inventory

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	domaininv "github.com/jhoicas/bodega-api/internal/domain/inventory"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// StockViewUseCase arma la vista de inventario de un comerciante: cada lote
// clasificado (umbral + vencimiento) y agrupado por producto.
type StockViewUseCase struct {
	batchRepo repository.BatchRepository
}

// NewStockViewUseCase construye el caso de uso.
func NewStockViewUseCase(batchRepo repository.BatchRepository) *StockViewUseCase {
	return &StockViewUseCase{batchRepo: batchRepo}
}

// ListInventory devuelve los lotes del comerciante agrupados por producto en
// orden de primera aparición, con el estado derivado por lote.
func (uc *StockViewUseCase) ListInventory(ctx context.Context, merchantID string) (*dto.InventoryViewResponse, error) {
	if merchantID == "" {
		return nil, domain.ErrUnauthorized
	}
	batches, err := uc.batchRepo.ListByMerchant(merchantID)
	if err != nil {
		return nil, err
	}

	groups := domaininv.GroupByProduct(batches)
	out := make([]dto.ProductGroupResponse, 0, len(groups))
	for _, g := range groups {
		items := make([]dto.BatchResponse, 0, len(g.Batches))
		for _, b := range g.Batches {
			items = append(items, toBatchResponse(b))
		}
		out = append(out, dto.ProductGroupResponse{
			ProductID:     g.ProductID,
			TotalQuantity: g.TotalQuantity,
			Batches:       items,
		})
	}
	return &dto.InventoryViewResponse{Groups: out, Total: len(batches)}, nil
}

func toBatchResponse(b *entity.InventoryBatch) dto.BatchResponse {
	st := domaininv.Classify(b)
	return dto.BatchResponse{
		ID:            b.ID,
		ProductID:     b.ProductID,
		MerchantID:    b.MerchantID,
		Quantity:      b.Quantity,
		Location:      b.Location,
		MinStockLevel: b.MinStockLevel,
		MaxStockLevel: b.MaxStockLevel,
		IsLowStock:    st.IsLowStock,
		IsOverStock:   st.IsOverStock,
		ExpiryLabel:   st.ExpiryLabel,
		ExpiryStatus:  st.ExpiryStatus,
		StatusVariant: st.StatusVariant,
		StatusText:    st.StatusText,
	}
}
