// Package postgres persists filter-panel state snapshots.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"murshid/domain/core"
	"murshid/domain/filter"
	"murshid/internal"
)

// FilterStateRepository stores versioned filter-state snapshots keyed by
// session and view name. Snapshots persisted under an older StateVersion are
// discarded on load and a fresh empty state is returned instead.
type FilterStateRepository struct {
	db     *sqlx.DB
	logger *internal.Logger
}

// NewFilterStateRepository creates a new filter state repository
func NewFilterStateRepository(db *sqlx.DB) *FilterStateRepository {
	return &FilterStateRepository{db: db, logger: internal.NewDefaultLogger()}
}

// EnsureSchema creates the backing table when it does not exist yet
func (r *FilterStateRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS filter_states (
			session_id   TEXT NOT NULL,
			name         TEXT NOT NULL,
			version      INT NOT NULL,
			state        JSONB NOT NULL,
			last_updated TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (session_id, name)
		)`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create filter_states table: %w", err)
	}
	return nil
}

// Save upserts the snapshot under its session and view name
func (r *FilterStateRepository) Save(ctx context.Context, session core.SessionID, state *filter.State) error {
	state.Version = filter.StateVersion
	state.UpdatedAt = core.Now()

	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal filter state: %w", err)
	}

	query := `
		INSERT INTO filter_states (session_id, name, version, state, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id, name) DO UPDATE SET
			version = EXCLUDED.version,
			state = EXCLUDED.state,
			last_updated = EXCLUDED.last_updated`

	if _, err := r.db.ExecContext(ctx, query,
		session.String(), state.Name, state.Version, payload, state.UpdatedAt.Time()); err != nil {
		return fmt.Errorf("failed to save filter state: %w", err)
	}
	r.logger.Debug("Saved filter state %q for session %s (version %d)", state.Name, session, state.Version)
	return nil
}

// Get loads the session's snapshot for a view name. Missing or
// version-incompatible snapshots yield a fresh empty state, never an error.
func (r *FilterStateRepository) Get(ctx context.Context, session core.SessionID, name string) (*filter.State, error) {
	query := `SELECT state FROM filter_states WHERE session_id = $1 AND name = $2 AND version = $3`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, session.String(), name, filter.StateVersion).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return filter.NewState(name), nil
		}
		return nil, fmt.Errorf("failed to get filter state: %w", err)
	}

	var state filter.State
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal filter state: %w", err)
	}
	if !state.Compatible() {
		r.logger.Warn("Discarding stale filter state %q (version %d)", name, state.Version)
		return filter.NewState(name), nil
	}
	return &state, nil
}

// Clear removes the session's snapshot for a view name
func (r *FilterStateRepository) Clear(ctx context.Context, session core.SessionID, name string) error {
	query := `DELETE FROM filter_states WHERE session_id = $1 AND name = $2`
	if _, err := r.db.ExecContext(ctx, query, session.String(), name); err != nil {
		return fmt.Errorf("failed to clear filter state: %w", err)
	}
	return nil
}
