package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calverly/taskdeck-api/internal/config"
)

func TestSetup(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
		require.NoError(t, err, "level %s", level)
		require.NotNil(t, log)
	}

	// Unknown levels fall back to info rather than failing startup.
	log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: "chatty"})
	require.NoError(t, err)
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestContextRoundTrip(t *testing.T) {
	base := slog.Default().With(slog.String("trace_id", "abc"))

	ctx := WithContext(context.Background(), base)
	assert.Same(t, base, FromContext(ctx))
	assert.Same(t, base, FromContextOrDefault(ctx, nil))
}

func TestFromContextFallbacks(t *testing.T) {
	ctx := context.Background()

	assert.Same(t, slog.Default(), FromContext(ctx))

	def := slog.Default().With(slog.String("component", "test"))
	assert.Same(t, def, FromContextOrDefault(ctx, def))
	assert.Same(t, slog.Default(), FromContextOrDefault(ctx, nil))
}
