package repository

import (
	"time"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// TransactionRepository define el puerto del log de auditoría de movimientos.
// Append-only: no hay Update ni Delete.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	ListByMerchant(merchantID string, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.Transaction, error)
}
