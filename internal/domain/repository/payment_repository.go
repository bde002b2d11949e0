package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia de cargos por solicitud.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	ListByMerchant(merchantID string, limit, offset int) ([]*entity.Payment, error)
	// SummarizeByMerchant agrega conteo y total de cargos por comerciante
	// (vista de administración).
	SummarizeByMerchant() ([]*entity.PaymentSummary, error)
}
