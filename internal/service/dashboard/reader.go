package dashboard

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/janisto/matrimony-api/internal/model"
	applog "github.com/janisto/matrimony-api/internal/platform/logging"
)

// storeFailure is implemented by errors from a failed record or overview store call.
type storeFailure interface {
	error
	StoreStep() string
}

// categorizeError converts refresh errors to audit-safe categories.
func categorizeError(err error) string {
	var sf storeFailure
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.As(err, &sf):
		return "store_failed"
	default:
		return "internal_error"
	}
}

// Reader serves cached overviews and computes the ones that are missing.
type Reader struct {
	store      Store
	recomputer Recomputer
}

// NewReader creates a Reader over the overview cache and the record-backed recomputer.
func NewReader(store Store, recomputer Recomputer) *Reader {
	return &Reader{store: store, recomputer: recomputer}
}

// Overview returns the cached overview. An absent overview was never written
// or was invalidated by a failed save; it is computed from the records and
// returned without being stored.
func (r *Reader) Overview(ctx context.Context, userID string) (*model.DashboardOverview, error) {
	o, err := r.store.Get(ctx, userID)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	applog.LogInfo(ctx, "dashboard overview not cached, computing from records", zap.String("userId", userID))
	return r.recomputer.ComputeOverview(ctx, userID)
}

// Refresh recomputes the overview from the raw records and overwrites the cache.
func (r *Reader) Refresh(ctx context.Context, userID string) (*model.DashboardOverview, error) {
	o, err := r.recomputer.RecomputeOverview(ctx, userID)
	if err != nil {
		applog.LogAuditEvent(ctx, applog.AuditEvent{
			Action: applog.ActionOverviewRefresh, UserID: userID,
			Result: applog.ResultFailure, Reason: categorizeError(err),
		})
		return nil, err
	}
	applog.LogAuditEvent(ctx, applog.AuditEvent{
		Action: applog.ActionOverviewRefresh, UserID: userID, Result: applog.ResultSuccess,
		Details: map[string]any{"profileCompleteness": o.ProfileCompleteness},
	})
	return o, nil
}

// Compile-time interface check
var _ Service = (*Reader)(nil)
