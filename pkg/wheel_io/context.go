// pkg/wheel_io/context.go

package wheel_io

import (
	"context"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/ARTLEST/decision-wheel/pkg/shared"
	"github.com/ARTLEST/decision-wheel/pkg/telemetry"
	"github.com/ARTLEST/decision-wheel/pkg/wheel_err"
	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Timestamp  time.Time
	Span       trace.Span
	Command    string
	SessionID  string
	Attributes map[string]string
}

// NewContext starts a span for cmdName and derives a logger scoped to it.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	ctx, span := telemetry.Start(ctx, cmdName)
	sessionID := uuid.New().String()

	logger := zap.L().With(
		zap.String("command", cmdName),
		zap.String("session_id", sessionID),
	).Named(cmdName)

	if sc := span.SpanContext(); sc.IsValid() {
		logger = logger.With(zap.String("trace_id", sc.TraceID().String()))
	}

	return &RuntimeContext{
		Ctx:        ctx,
		Span:       span,
		Log:        logger,
		Timestamp:  time.Now(),
		Command:    cmdName,
		SessionID:  sessionID,
		Attributes: make(map[string]string),
	}
}

// HandlePanic recovers panics, logs them, and converts to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = wheel_err.NewInternalError("panic recovered", cerr.AssertionFailedf("panic: %v", r))
		rc.Log.Error("panic recovered", zap.Any("panic", r))
	}
}

// End logs outcome, records key attributes on the span, and ends it.
func (rc *RuntimeContext) End(errPtr *error) {
	defer rc.Span.End()

	var err error
	if errPtr != nil {
		err = *errPtr
	}
	duration := time.Since(rc.Timestamp)
	success := err == nil

	if success {
		rc.Log.Info("Command completed", zap.Duration("duration", duration))
	} else {
		rc.Log.Error("Command failed", zap.Duration("duration", duration), zap.Error(err))
	}

	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("os", runtime.GOOS),
		attribute.String("version", shared.Version),
		attribute.String("session_id", rc.SessionID),
		attribute.String("args", strings.Join(argsOf(os.Args), " ")),
	}
	for k, v := range rc.Attributes {
		attrs = append(attrs, attribute.String(k, v))
	}
	if !success {
		attrs = append(attrs, attribute.String("error_type", wheel_err.CategoryOf(err).String()))
		rc.Span.SetStatus(codes.Error, err.Error())
	}
	rc.Span.SetAttributes(attrs...)
}

func argsOf(args []string) []string {
	if len(args) < 2 {
		return nil
	}
	return args[1:]
}
