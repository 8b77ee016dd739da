package logging

import (
	"context"

	"go.uber.org/zap"
)

// Audited actions.
const (
	ActionProfileSave     = "profile.save"
	ActionOverviewRefresh = "overview.refresh"
)

// Audit results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// AuditEvent records who changed what. Details must never carry profile field values.
type AuditEvent struct {
	Action string
	UserID string
	Result string
	// Reason is an error category for failures.
	Reason  string
	Details map[string]any
}

// LogAuditEvent writes e at info level on the request logger.
func LogAuditEvent(ctx context.Context, e AuditEvent) {
	fields := []zap.Field{
		zap.String("audit.action", e.Action),
		zap.String("audit.user_id", e.UserID),
		zap.String("audit.result", e.Result),
	}
	if e.Reason != "" {
		fields = append(fields, zap.String("audit.reason", e.Reason))
	}
	if len(e.Details) > 0 {
		fields = append(fields, zap.Any("audit.details", e.Details))
	}
	LoggerFromContext(ctx).Info("audit", fields...)
}
