package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.AppStateRepository = (*AppStateRepo)(nil)

// AppStateRepo implementación clave/valor del estado de la aplicación sobre
// la tabla app_state (key TEXT PK, value JSONB).
type AppStateRepo struct {
	q Querier
}

// NewAppStateRepository construye el adaptador del estado clave/valor.
func NewAppStateRepository(q Querier) *AppStateRepo {
	return &AppStateRepo{q: q}
}

// Get devuelve el valor JSON de una clave, o nil si no existe.
func (r *AppStateRepo) Get(key string) (json.RawMessage, error) {
	query := `SELECT value FROM app_state WHERE key = $1`
	var value []byte
	err := r.q.QueryRow(context.Background(), query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get app state: %w", err)
	}
	return value, nil
}

// Set inserta o sobreescribe el valor de una clave.
func (r *AppStateRepo) Set(key string, value json.RawMessage) error {
	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, key, []byte(value))
	if err != nil {
		return fmt.Errorf("set app state: %w", err)
	}
	return nil
}

// Delete elimina una clave (sin error si no existe).
func (r *AppStateRepo) Delete(key string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM app_state WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete app state: %w", err)
	}
	return nil
}

// All devuelve todas las parejas clave/valor.
func (r *AppStateRepo) All() (map[string]json.RawMessage, error) {
	rows, err := r.q.Query(context.Background(), `SELECT key, value FROM app_state`)
	if err != nil {
		return nil, fmt.Errorf("list app state: %w", err)
	}
	defer rows.Close()
	out := make(map[string]json.RawMessage)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan app state: %w", err)
		}
		out[key] = value
	}
	return out, rows.Err()
}
