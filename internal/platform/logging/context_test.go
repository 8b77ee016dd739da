package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level zapcore.Level, opts ...zap.Option) (context.Context, *observer.ObservedLogs) {
	core, recorded := observer.New(level)
	return contextWithLogger(context.Background(), zap.New(core, opts...)), recorded
}

func fieldMap(entry observer.LoggedEntry) map[string]zap.Field {
	fields := make(map[string]zap.Field, len(entry.Context))
	for _, f := range entry.Context {
		fields[f.Key] = f
	}
	return fields
}

func TestLoggerFromContextFallsBack(t *testing.T) {
	var nilCtx context.Context //nolint:revive // testing nil context handling
	if LoggerFromContext(nilCtx) != Logger() {
		t.Fatal("expected process logger for nil context")
	}
	if LoggerFromContext(context.Background()) != Logger() {
		t.Fatal("expected process logger for bare context")
	}
	ctx := context.WithValue(context.Background(), ctxLoggerKey{}, (*zap.Logger)(nil))
	if LoggerFromContext(ctx) != Logger() {
		t.Fatal("expected process logger for nil logger in context")
	}
}

func TestLogLevels(t *testing.T) {
	ctx, recorded := observed(zapcore.DebugLevel)

	LogInfo(ctx, "overview served", zap.String("lang", "mr"))
	LogWarn(ctx, "blob backend is in-memory")
	LogError(ctx, "save failed", errors.New("deadline exceeded"), zap.String("step", "write_overview"))
	LogError(ctx, "no cause", nil)

	entries := recorded.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	wantLevels := []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel, zapcore.ErrorLevel}
	for i, want := range wantLevels {
		if entries[i].Level != want {
			t.Fatalf("entry %d: expected %s, got %s", i, want, entries[i].Level)
		}
	}

	fields := fieldMap(entries[2])
	if f, ok := fields["step"]; !ok || f.String != "write_overview" {
		t.Fatalf("expected step field, got %+v", fields)
	}
	if f, ok := fields["error"]; !ok || f.Type != zapcore.ErrorType {
		t.Fatalf("expected error field, got %+v", fields)
	}
	if _, ok := fieldMap(entries[3])["error"]; ok {
		t.Fatal("expected no error field for a nil error")
	}
}

func TestLogFatalAppendsErrorField(t *testing.T) {
	ctx, recorded := observed(zapcore.InfoLevel, zap.WithFatalHook(zapcore.WriteThenPanic))

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic triggered by fatal hook")
		}
		entries := recorded.All()
		if len(entries) != 1 || entries[0].Level != zapcore.FatalLevel {
			t.Fatalf("expected one fatal entry, got %+v", entries)
		}
		if _, ok := fieldMap(entries[0])["error"]; !ok {
			t.Fatal("expected error field")
		}
	}()

	LogFatal(ctx, "invalid configuration", errors.New("MAX_BODY_BYTES must be positive"))
}

func TestWithUser(t *testing.T) {
	ctx, recorded := observed(zapcore.InfoLevel)

	LogInfo(WithUser(ctx, "user-1"), "saved")
	LogInfo(WithUser(ctx, ""), "anonymous")

	entries := recorded.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if f, ok := fieldMap(entries[0])["userId"]; !ok || f.String != "user-1" {
		t.Fatalf("expected userId field, got %+v", entries[0].Context)
	}
	if len(entries[1].Context) != 0 {
		t.Fatalf("expected no fields for empty user, got %+v", entries[1].Context)
	}
}
