package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.Equal(t, 30, cfg.HTTPClientSettings.TimeoutSeconds)
	assert.Equal(t, ".", cfg.MonitorConfig.SnapshotDir)
	assert.Equal(t, 30, cfg.MarketStatsConfig.HistoryLimitDays)
	assert.NotEmpty(t, cfg.MarketStatsConfig.ExcludedFurniLines)
	assert.Empty(t, cfg.StorageConfig.HistoryDBPath)
}

func TestLoadGlobalConfig_NoFile(t *testing.T) {
	cfg, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadGlobalConfig_YAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
log_config:
  log_level: debug
  log_format: json
monitor:
  snapshot_dir: /tmp/snapshots
notification:
  variables_webhook_url: https://discord.test/webhook
storage:
  history_db_path: data/history.db
http_client:
  timeout_seconds: 10
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadGlobalConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	assert.Equal(t, "json", cfg.LogConfig.LogFormat)
	assert.Equal(t, "/tmp/snapshots", cfg.MonitorConfig.SnapshotDir)
	assert.Equal(t, "https://discord.test/webhook", cfg.NotificationConfig.VariablesWebhookURL)
	assert.Equal(t, "data/history.db", cfg.StorageConfig.HistoryDBPath)
	assert.Equal(t, 10, cfg.HTTPClientSettings.TimeoutSeconds)

	// Unset sections keep their defaults
	assert.Equal(t, 30, cfg.MarketStatsConfig.HistoryLimitDays)
}

func TestLoadGlobalConfig_JSON(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	content := `{"monitor": {"snapshot_dir": "/data"}}`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadGlobalConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "/data", cfg.MonitorConfig.SnapshotDir)
}

func TestValidateConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	require.NoError(t, ValidateConfig(cfg))

	cfg.LogConfig.LogLevel = "shout"
	assert.Error(t, ValidateConfig(cfg))

	cfg = NewDefaultGlobalConfig()
	cfg.NotificationConfig.FurnidataWebhookURL = "not-a-url"
	assert.Error(t, ValidateConfig(cfg))

	cfg = NewDefaultGlobalConfig()
	cfg.HTTPClientSettings.TimeoutSeconds = -5
	assert.Error(t, ValidateConfig(cfg))
}

func TestNotificationConfig_WebhookURLFor(t *testing.T) {
	nc := NotificationConfig{
		FurnidataWebhookURL:  "https://discord.test/furni",
		FlashTextsWebhookURL: "https://discord.test/texts",
		VariablesWebhookURL:  "https://discord.test/vars",
	}

	assert.Equal(t, "https://discord.test/furni", nc.WebhookURLFor("furnidata"))
	assert.Equal(t, "https://discord.test/texts", nc.WebhookURLFor("flashtexts"))
	assert.Equal(t, "https://discord.test/vars", nc.WebhookURLFor("variables"))
	assert.Empty(t, nc.WebhookURLFor("unknown"))
}
