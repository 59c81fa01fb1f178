package config

import (
	"time"

	"github.com/aleister1102/gamewatch/internal/httpclient"
)

// HTTPClientSettings defines the HTTP client section of the config file
type HTTPClientSettings struct {
	TimeoutSeconds     int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"omitempty,min=1,max=300"`
	UserAgent          string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify,omitempty" yaml:"insecure_skip_verify,omitempty"`
	EnableHTTP2        *bool  `json:"enable_http2,omitempty" yaml:"enable_http2,omitempty"`
	MaxContentSizeMB   int    `json:"max_content_size_mb,omitempty" yaml:"max_content_size_mb,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultHTTPClientSettings creates default HTTP client settings
func NewDefaultHTTPClientSettings() HTTPClientSettings {
	return HTTPClientSettings{
		TimeoutSeconds: 30,
	}
}

// ToClientConfig converts the file section to the httpclient configuration
func (s HTTPClientSettings) ToClientConfig() httpclient.HTTPClientConfig {
	cfg := httpclient.DefaultHTTPClientConfig()

	if s.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(s.TimeoutSeconds) * time.Second
	}
	if s.UserAgent != "" {
		cfg.UserAgent = s.UserAgent
	}
	cfg.InsecureSkipVerify = s.InsecureSkipVerify
	if s.EnableHTTP2 != nil {
		cfg.EnableHTTP2 = *s.EnableHTTP2
	}
	if s.MaxContentSizeMB > 0 {
		cfg.MaxContentSize = s.MaxContentSizeMB * 1024 * 1024
	}

	return cfg
}
