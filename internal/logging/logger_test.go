package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tuikit/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.DebugLevel

	logger := logging.NewWithWriter(cfg, &buf)
	logger.Debug().Str("component", "combo").Msg("popup opened")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "combo", entry["component"])
	assert.Equal(t, "popup opened", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.WarnLevel

	logger := logging.NewWithWriter(cfg, &buf)
	logger.Info().Msg("hidden")

	assert.Empty(t, buf.String())
}

func TestNewWithWriter_ConsoleHasNoColorOnBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(logging.DefaultConfig(), &buf)
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestNewWithFile_WritesRotatingFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := logging.DefaultConfig()
	cfg.Format = "json"

	logger, cleanup, err := logging.NewWithFile(cfg, logging.FileConfig{
		Enabled:    true,
		Dir:        dir,
		MaxSizeMB:  1,
		MaxBackups: 1,
	})
	require.NoError(t, err)

	logger.Info().Msg("written to disk")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, logging.DefaultLogFilename))
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to disk")
	assert.Contains(t, string(data), `"session":`)
}

func TestNewWithFile_Disabled(t *testing.T) {
	logger, cleanup, err := logging.NewWithFile(logging.DefaultConfig(), logging.FileConfig{})
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	cleanup()

	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestGenerateSessionID(t *testing.T) {
	id := logging.GenerateSessionID()

	assert.Regexp(t, regexp.MustCompile(`^\d{8}_\d{6}_[0-9a-f]{4}$`), id)
	assert.Equal(t, id[len(id)-4:], logging.ShortSessionID(id))
	assert.Equal(t, "ab", logging.ShortSessionID("ab"))
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"

	ctx := logging.WithContext(context.Background(), logging.NewWithWriter(cfg, &buf))
	ctx = logging.WithComponent(ctx, "gui")
	ctx = logging.WithWindow(ctx, "Main")

	logging.FromContext(ctx).Info().Msg("ready")

	assert.Contains(t, buf.String(), `"component":"gui"`)
	assert.Contains(t, buf.String(), `"window":"Main"`)
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	logger := logging.FromContext(context.Background())
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestConfigFromValues(t *testing.T) {
	cfg := logging.ConfigFromValues("debug", "json")
	assert.Equal(t, zerolog.DebugLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)

	cfg = logging.ConfigFromValues("bogus", "xml")
	assert.Equal(t, zerolog.InfoLevel, cfg.Level)
	assert.Equal(t, "console", cfg.Format)
}

func TestWithEnv(t *testing.T) {
	t.Setenv("TUIKIT_LOG_LEVEL", "error")
	t.Setenv("TUIKIT_LOG_FORMAT", "json")

	cfg := logging.WithEnv(logging.ConfigFromValues("debug", "console"))
	assert.Equal(t, zerolog.ErrorLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)

	t.Setenv("TUIKIT_LOG_LEVEL", "")
	t.Setenv("TUIKIT_LOG_FORMAT", "yaml")
	cfg = logging.WithEnv(logging.ConfigFromValues("debug", "console"))
	assert.Equal(t, zerolog.DebugLevel, cfg.Level)
	assert.Equal(t, "console", cfg.Format)
}
