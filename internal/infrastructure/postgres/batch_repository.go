package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación de BatchRepository sobre PostgreSQL.
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = `id, product_id, merchant_id, quantity, location, min_stock_level, max_stock_level, expiry_date, expiry_status, updated_at`

// Create persiste un lote nuevo.
func (r *BatchRepo) Create(batch *entity.InventoryBatch) error {
	query := `
		INSERT INTO inventory_batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.ProductID, batch.MerchantID, batch.Quantity, batch.Location,
		batch.MinStockLevel, batch.MaxStockLevel, batch.ExpiryDate, batch.ExpiryStatus,
		batch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *BatchRepo) GetByID(id string) (*entity.InventoryBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM inventory_batches WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByMerchantAndProduct devuelve el lote del comerciante para el producto, o nil.
// Con varios lotes por producto gana el de actualización más reciente.
func (r *BatchRepo) GetByMerchantAndProduct(merchantID, productID string) (*entity.InventoryBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM inventory_batches
		WHERE merchant_id = $1 AND product_id = $2
		ORDER BY updated_at DESC LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, merchantID, productID))
}

// ListByMerchant lista los lotes del comerciante en orden estable de creación.
func (r *BatchRepo) ListByMerchant(merchantID string) ([]*entity.InventoryBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM inventory_batches WHERE merchant_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryBatch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Update sobreescribe cantidad, umbrales y vencimiento del lote.
func (r *BatchRepo) Update(batch *entity.InventoryBatch) error {
	query := `
		UPDATE inventory_batches
		SET quantity = $2, location = $3, min_stock_level = $4, max_stock_level = $5,
		    expiry_date = $6, expiry_status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.Quantity, batch.Location, batch.MinStockLevel, batch.MaxStockLevel,
		batch.ExpiryDate, batch.ExpiryStatus, batch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update batch: %w", err)
	}
	return nil
}

func (r *BatchRepo) scanOne(row pgx.Row) (*entity.InventoryBatch, error) {
	b, err := scanBatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func scanBatch(row pgx.Row) (*entity.InventoryBatch, error) {
	var b entity.InventoryBatch
	err := row.Scan(
		&b.ID, &b.ProductID, &b.MerchantID, &b.Quantity, &b.Location,
		&b.MinStockLevel, &b.MaxStockLevel, &b.ExpiryDate, &b.ExpiryStatus, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan batch: %w", err)
	}
	return &b, nil
}
