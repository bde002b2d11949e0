package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del log de auditoría sobre PostgreSQL.
// Solo inserta y lista: el log es append-only.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción de auditoría.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transactions (id, merchant_id, product_id, type, quantity, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.MerchantID, tx.ProductID, string(tx.Type), tx.Quantity, tx.Date, tx.Notes, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// ListByMerchant lista transacciones del comerciante, opcionalmente acotadas por fecha.
func (r *TransactionRepo) ListByMerchant(merchantID string, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT id, merchant_id, product_id, type, quantity, date, notes, created_at
		FROM transactions
		WHERE merchant_id = $1
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date <= $3)
		ORDER BY date DESC, created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, merchantID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

// ListByProduct lista transacciones de un producto, más recientes primero.
func (r *TransactionRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT id, merchant_id, product_id, type, quantity, date, notes, created_at
		FROM transactions
		WHERE product_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions by product: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		var typ string
		if err := rows.Scan(&t.ID, &t.MerchantID, &t.ProductID, &typ, &t.Quantity, &t.Date, &t.Notes, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Type = entity.AdjustmentReason(typ)
		list = append(list, &t)
	}
	return list, rows.Err()
}
