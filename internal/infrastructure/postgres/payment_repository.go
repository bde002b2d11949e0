package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de cargos. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un cargo.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, merchant_id, request_id, amount, date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.MerchantID, payment.RequestID, payment.Amount, payment.Date,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListByMerchant lista cargos del comerciante, más recientes primero.
func (r *PaymentRepo) ListByMerchant(merchantID string, limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT id, merchant_id, request_id, amount, date
		FROM payments WHERE merchant_id = $1
		ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, merchantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.MerchantID, &p.RequestID, &p.Amount, &p.Date); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SummarizeByMerchant agrega conteo y total de cargos por comerciante (admin).
// El nombre sale del usuario merchant asociado, si existe.
func (r *PaymentRepo) SummarizeByMerchant() ([]*entity.PaymentSummary, error) {
	query := `
		SELECT p.merchant_id, COALESCE(MAX(u.name), ''), COUNT(*), COALESCE(SUM(p.amount), 0)
		FROM payments p
		LEFT JOIN users u ON u.merchant_id = p.merchant_id
		GROUP BY p.merchant_id
		ORDER BY SUM(p.amount) DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("summarize payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentSummary
	for rows.Next() {
		var s entity.PaymentSummary
		if err := rows.Scan(&s.MerchantID, &s.MerchantName, &s.Count, &s.Total); err != nil {
			return nil, fmt.Errorf("scan payment summary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
