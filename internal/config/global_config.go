package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/gamewatch/internal/errorwrapper"
	"github.com/aleister1102/gamewatch/internal/logger"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	HTTPClientSettings HTTPClientSettings   `json:"http_client,omitempty" yaml:"http_client,omitempty"`
	LogConfig          logger.FileLogConfig `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	MarketStatsConfig  MarketStatsConfig    `json:"market_stats,omitempty" yaml:"market_stats,omitempty"`
	MonitorConfig      MonitorConfig        `json:"monitor,omitempty" yaml:"monitor,omitempty"`
	NotificationConfig NotificationConfig   `json:"notification,omitempty" yaml:"notification,omitempty"`
	StorageConfig      StorageConfig        `json:"storage,omitempty" yaml:"storage,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		HTTPClientSettings: NewDefaultHTTPClientSettings(),
		LogConfig:          logger.NewDefaultFileLogConfig(),
		MarketStatsConfig:  NewDefaultMarketStatsConfig(),
		MonitorConfig:      NewDefaultMonitorConfig(),
		NotificationConfig: NewDefaultNotificationConfig(),
		StorageConfig:      NewDefaultStorageConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// The config file is optional: every monitor instance runs with compiled-in
// defaults, so a missing file simply yields the default configuration.
// Supports both YAML and JSON; YAML is preferred for .yaml/.yml extensions.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		if providedPath != "" {
			return nil, errorwrapper.NewValidationError("config_file", providedPath, "config file does not exist")
		}
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read config file "+filePath)
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config file "+filePath)
	}

	return cfg, nil
}

// parseConfigContent unmarshals config data based on the file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".json":
		return json.Unmarshal(data, cfg)
	default:
		// Try YAML first since it is a superset of what we emit in examples
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return json.Unmarshal(data, cfg)
		}
		return nil
	}
}
