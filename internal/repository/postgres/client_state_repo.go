package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventify/internal/domain"
)

const undefinedTable = pq.ErrorCode("42P01")

// ClientStateRepository persists the session record as a JSONB row keyed
// by storage key.
//
//	CREATE TABLE client_state (
//	    storage_key TEXT PRIMARY KEY,
//	    value       JSONB NOT NULL,
//	    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type ClientStateRepository struct {
	DB  *sql.DB
	Key string
}

func NewClientStateRepository(db *sql.DB, key string) *ClientStateRepository {
	return &ClientStateRepository{DB: db, Key: key}
}

var _ domain.SessionPersister = (*ClientStateRepository)(nil)

// EnsureSchema creates the client_state table when it does not exist.
func (r *ClientStateRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS client_state (
			storage_key TEXT PRIMARY KEY,
			value       JSONB NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create client_state table: %w", err)
	}
	return nil
}

func (r *ClientStateRepository) Load(ctx context.Context) (domain.PersistedSession, error) {
	query := `
		SELECT value
		FROM client_state
		WHERE storage_key = $1
	`
	var raw []byte
	if err := r.DB.QueryRowContext(ctx, query, r.Key).Scan(&raw); err != nil {
		var pqErr *pq.Error
		if errors.Is(err, sql.ErrNoRows) || (errors.As(err, &pqErr) && pqErr.Code == undefinedTable) {
			return domain.PersistedSession{}, domain.ErrSessionNotFound
		}
		return domain.PersistedSession{}, err
	}
	var session domain.PersistedSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return domain.PersistedSession{}, fmt.Errorf("decode client state %q: %w", r.Key, err)
	}
	return session, nil
}

func (r *ClientStateRepository) Save(ctx context.Context, session domain.PersistedSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode client state: %w", err)
	}
	query := `
		INSERT INTO client_state (storage_key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (storage_key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err = r.DB.ExecContext(ctx, query, r.Key, raw)
	return err
}
