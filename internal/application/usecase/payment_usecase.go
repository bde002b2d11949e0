package usecase

import (
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// PaymentUseCase consulta de cargos: listado por comerciante y agregado
// global para administración.
type PaymentUseCase struct {
	repo repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo}
}

// ListForMerchant lista los cargos de un comerciante.
func (uc *PaymentUseCase) ListForMerchant(merchantID string, page dto.PageRequest) ([]dto.PaymentResponse, error) {
	if merchantID == "" {
		return nil, domain.ErrUnauthorized
	}
	page.DefaultPage()
	list, err := uc.repo.ListByMerchant(merchantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.PaymentResponse{
			ID:         p.ID,
			MerchantID: p.MerchantID,
			RequestID:  p.RequestID,
			Amount:     p.Amount,
			Date:       p.Date,
		})
	}
	return items, nil
}

// Summaries agrega conteo y total de cargos por comerciante (admin).
func (uc *PaymentUseCase) Summaries() ([]dto.PaymentSummaryResponse, error) {
	list, err := uc.repo.SummarizeByMerchant()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentSummaryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.PaymentSummaryResponse{
			MerchantID:   s.MerchantID,
			MerchantName: s.MerchantName,
			Count:        s.Count,
			Total:        s.Total,
		})
	}
	return items, nil
}
