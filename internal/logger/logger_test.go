package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	level, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)

	_, err = ParseLevel("not-a-level")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatConsole, ParseFormat("console"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatConsole, ParseFormat("unknown"))
}

func TestLoggerBuilder_Defaults(t *testing.T) {
	logger, err := NewLoggerBuilder().Build()
	require.NoError(t, err)

	// Should be usable without panicking
	logger.Info().Msg("test message")
}

func TestLoggerBuilder_FileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "test.log")

	cfg := NewDefaultFileLogConfig()
	cfg.LogFile = logFile
	cfg.LogFormat = "json"

	logger, err := New(cfg)
	require.NoError(t, err)

	logger.Info().Str("key", "value").Msg("file log entry")

	// lumberjack creates the file lazily on first write
	_, err = os.Stat(logFile)
	assert.NoError(t, err)
}

func TestLoggerBuilder_InvalidMaxSize(t *testing.T) {
	builder := NewLoggerBuilder()
	builder.config.MaxSizeMB = 0

	_, err := builder.Build()
	assert.Error(t, err)
}
