package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.RequestRepository = (*RequestRepo)(nil)

// RequestRepo implementación de RequestRepository sobre PostgreSQL.
// Los ítems viajan como JSONB en la misma fila: se leen y escriben siempre
// junto con la solicitud, nunca por separado.
type RequestRepo struct {
	q Querier
}

// NewRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRequestRepository(q Querier) *RequestRepo {
	return &RequestRepo{q: q}
}

const requestColumns = `id, merchant_id, type, items, total_weight_kg, pickup_location_id, delivery_location_id, status, fee, date, created_at`

// Create persiste una solicitud con sus ítems.
func (r *RequestRepo) Create(req *entity.InventoryRequest) error {
	items, err := json.Marshal(req.Items)
	if err != nil {
		return fmt.Errorf("marshal request items: %w", err)
	}
	query := `
		INSERT INTO inventory_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9, $10, $11)`
	_, err = r.q.Exec(context.Background(), query,
		req.ID, req.MerchantID, string(req.Type), items, req.TotalWeightKg,
		req.PickupLocationID, req.DeliveryLocationID, req.Status, req.Fee, req.Date, req.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert request: id duplicado: %w", err)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert request: ubicación inexistente: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *RequestRepo) GetByID(id string) (*entity.InventoryRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM inventory_requests WHERE id = $1`
	req, err := scanRequest(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return req, nil
}

// ListByMerchant lista solicitudes del comerciante, más recientes primero.
func (r *RequestRepo) ListByMerchant(merchantID string, limit, offset int) ([]*entity.InventoryRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM inventory_requests WHERE merchant_id = $1
		ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, merchantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()
	return scanRequests(rows)
}

// ListAll lista todas las solicitudes (admin), más recientes primero.
func (r *RequestRepo) ListAll(limit, offset int) ([]*entity.InventoryRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM inventory_requests
		ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list all requests: %w", err)
	}
	defer rows.Close()
	return scanRequests(rows)
}

// UpdateStatus cambia el estado de una solicitud.
func (r *RequestRepo) UpdateStatus(id, status string) error {
	query := `UPDATE inventory_requests SET status = $2 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update request status: solicitud %s no existe", id)
	}
	return nil
}

func scanRequests(rows pgx.Rows) ([]*entity.InventoryRequest, error) {
	var list []*entity.InventoryRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

func scanRequest(row pgx.Row) (*entity.InventoryRequest, error) {
	var (
		req      entity.InventoryRequest
		typ      string
		items    []byte
		pickup   *string
		delivery *string
	)
	err := row.Scan(
		&req.ID, &req.MerchantID, &typ, &items, &req.TotalWeightKg,
		&pickup, &delivery, &req.Status, &req.Fee, &req.Date, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}
	req.Type = entity.RequestType(typ)
	if err := json.Unmarshal(items, &req.Items); err != nil {
		return nil, fmt.Errorf("unmarshal request items: %w", err)
	}
	if pickup != nil {
		req.PickupLocationID = *pickup
	}
	if delivery != nil {
		req.DeliveryLocationID = *delivery
	}
	return &req, nil
}
