package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetup_JSONWithRequestID(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { logger.Store(prev) })

	var buf bytes.Buffer
	_, err := Setup(Options{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))
	LoggerFromContext(ctx).Debug("hello", "k", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, float64(1), rec["k"])
}

func TestSetup_LevelFilters(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { logger.Store(prev) })

	var buf bytes.Buffer
	_, err := Setup(Options{Level: "error", Output: &buf})
	require.NoError(t, err)
	Logger().Info("quiet")
	assert.Empty(t, buf.String())

	WithFields("component", "test").Error("loud")
	assert.Contains(t, buf.String(), "component=test")
}

func TestSetup_BadFormat(t *testing.T) {
	_, err := Setup(Options{Format: "xml"})
	assert.Error(t, err)
}
