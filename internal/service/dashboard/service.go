// Package dashboard stores and serves the cached dashboard overview.
//
// The overview is a cache derived from the profile records. It is written by
// the profile save path and by an explicit refresh. Reads never write it: a
// missing overview is computed from the records and returned uncached.
package dashboard

import (
	"context"
	"errors"

	"github.com/janisto/matrimony-api/internal/model"
)

// ErrNotFound reports that no overview is cached for the user.
var ErrNotFound = errors.New("dashboard overview not found")

// Store is keyed read/write access to cached overviews. Last writer wins.
type Store interface {
	// Get returns the cached overview or ErrNotFound.
	Get(ctx context.Context, userID string) (*model.DashboardOverview, error)
	// Save overwrites the cached overview, stamps UpdatedAt and returns what was stored.
	Save(ctx context.Context, userID string, overview model.DashboardOverview) (*model.DashboardOverview, error)
	// Delete invalidates the cached overview. Deleting an absent overview is not an error.
	Delete(ctx context.Context, userID string) error
}

// Recomputer derives overviews from the raw profile records.
type Recomputer interface {
	// ComputeOverview derives the overview without storing it.
	ComputeOverview(ctx context.Context, userID string) (*model.DashboardOverview, error)
	// RecomputeOverview derives the overview and overwrites the cached copy.
	RecomputeOverview(ctx context.Context, userID string) (*model.DashboardOverview, error)
}

// Service defines dashboard read operations.
type Service interface {
	Overview(ctx context.Context, userID string) (*model.DashboardOverview, error)
	Refresh(ctx context.Context, userID string) (*model.DashboardOverview, error)
}
