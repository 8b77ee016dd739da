package logging

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/janisto/matrimony-api/internal/platform/timeutil"
)

var (
	loggerOnce sync.Once
	baseLogger *zap.Logger
	loggerErr  error
	level      = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// severities maps zap levels to Cloud Logging severity names.
var severities = map[zapcore.Level]string{
	zapcore.DebugLevel:  "DEBUG",
	zapcore.InfoLevel:   "INFO",
	zapcore.WarnLevel:   "WARNING",
	zapcore.ErrorLevel:  "ERROR",
	zapcore.DPanicLevel: "CRITICAL",
	zapcore.PanicLevel:  "ALERT",
	zapcore.FatalLevel:  "EMERGENCY",
}

func encodeSeverity(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	s, ok := severities[l]
	if !ok {
		s = "DEFAULT"
	}
	enc.AppendString(s)
}

func encodeTimeMicros(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(timeutil.RFC3339Micros))
}

// productionConfig writes JSON lines to stdout with the field names Cloud Logging parses.
func productionConfig() zap.Config {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey, enc.EncodeTime = "timestamp", encodeTimeMicros
	enc.LevelKey, enc.EncodeLevel = "severity", encodeSeverity
	enc.MessageKey = "message"

	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.EncoderConfig = enc
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stdout"}
	return cfg
}

func initLogger() {
	baseLogger, loggerErr = productionConfig().Build(zap.AddCaller())
	if loggerErr != nil {
		baseLogger = zap.NewNop()
	}
}

// Logger returns the process-wide logger. Request handlers should prefer LoggerFromContext.
func Logger() *zap.Logger {
	loggerOnce.Do(initLogger)
	return baseLogger
}

// SetLevel changes the minimum level at runtime, e.g. from LOG_LEVEL.
func SetLevel(name string) error {
	l, err := zapcore.ParseLevel(name)
	if err != nil {
		return err
	}
	level.SetLevel(l)
	return nil
}

// Sync flushes buffered entries.
func Sync() error {
	return Logger().Sync()
}

// Err reports why the logger could not be built. Logging then goes nowhere.
func Err() error {
	Logger()
	return loggerErr
}
