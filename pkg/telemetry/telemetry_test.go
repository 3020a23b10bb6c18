package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestInit_NoopWhenPathEmpty(t *testing.T) {
	shutdown, err := Init("wheel-test", "")
	require.NoError(t, err)

	_, span := Start(context.Background(), "noop-span")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}

func TestInit_WritesSpansToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "spans.jsonl")

	shutdown, err := Init("wheel-test", path)
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = Init("wheel-test", "") })

	_, span := Start(context.Background(), "spin", attribute.Int("options", 3))
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, shutdown(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Name":"spin"`)
	assert.Contains(t, string(data), "options")
}

func TestStart_NilContext(t *testing.T) {
	ctx, span := Start(nil, "nil-ctx")
	defer span.End()
	assert.NotNil(t, ctx)
}
