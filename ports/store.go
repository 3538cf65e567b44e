// Package ports defines the interfaces between the engines and the outside
// collaborators: filter-state persistence, roster import and export.
package ports

import (
	"context"

	"murshid/domain/core"
	"murshid/domain/filter"
)

// FilterStateStore persists named filter-panel snapshots, keyed per browser
// session so concurrent counselors keep independent selections. Get returns
// a fresh empty state when no snapshot exists for the session or the stored
// one predates the current StateVersion.
type FilterStateStore interface {
	Get(ctx context.Context, session core.SessionID, name string) (*filter.State, error)
	Save(ctx context.Context, session core.SessionID, state *filter.State) error
	Clear(ctx context.Context, session core.SessionID, name string) error
}
