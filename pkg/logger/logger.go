package logger

import (
	"io"
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// New builds a console logger writing to w at the given level.
func New(level string, w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		ParseLogLevel(level),
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// Initialize replaces the zap and otelzap globals with a stderr logger.
// It may be called again once the configured level is known.
func Initialize(level string) *zap.Logger {
	return InitializeWithWriter(level, os.Stderr)
}

// InitializeWithWriter is Initialize with an explicit sink.
func InitializeWithWriter(level string, w io.Writer) *zap.Logger {
	l := New(level, w)
	SetLogger(l)
	l.Debug("Logger initialized", zap.String("log_level", ParseLogLevel(level).String()))
	return l
}

// SetLogger installs l as the global zap and otelzap logger.
func SetLogger(l *zap.Logger) {
	log = l
	zap.ReplaceGlobals(l)
	otelzap.ReplaceGlobals(otelzap.New(l))
}

// L returns the global logger, initializing it at the default level if needed.
func L() *zap.Logger {
	if log == nil {
		return Initialize(DefaultLevel)
	}
	return log
}

// Sync flushes any buffered log entries. Should be called before the application exits.
func Sync() error {
	if log == nil {
		return nil
	}
	return log.Sync()
}
