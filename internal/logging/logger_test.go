package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webdeck/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestNew_JSONWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	logger.Debug().Str("k", "v").Msg("hello")

	require.NotZero(t, buf.Len())
	assert.Contains(t, buf.String(), `"k":"v"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf})
	ctx := logging.WithContext(context.Background(), logger)

	ctx = logging.WithComponent(ctx, "store")
	logging.FromContext(ctx).Info().Msg("x")

	assert.Contains(t, buf.String(), `"component":"store"`)
}

func TestFromContext_WithoutLoggerIsNoop(t *testing.T) {
	log := logging.FromContext(context.Background())
	require.NotNil(t, log)
	log.Info().Msg("dropped")
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("WEBDECK_LOG_LEVEL", "debug")
	t.Setenv("WEBDECK_LOG_FORMAT", "")

	level, format := logging.ApplyEnvOverrides("warn", "json")
	assert.Equal(t, "debug", level)
	assert.Equal(t, "json", format)
}
