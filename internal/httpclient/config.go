package httpclient

import (
	"time"
)

// HTTPClientConfig holds configuration for the HTTP client
type HTTPClientConfig struct {
	Timeout             time.Duration     // Request timeout
	DialTimeout         time.Duration     // Connection dial timeout
	TLSHandshakeTimeout time.Duration     // TLS handshake timeout
	InsecureSkipVerify  bool              // Skip TLS verification
	EnableHTTP2         bool              // Enable HTTP/2 support
	UserAgent           string            // User-Agent header for all requests
	CustomHeaders       map[string]string // Extra headers added to all requests
	MaxContentSize      int               // Maximum response body size in bytes, 0 means unlimited
}

// DefaultHTTPClientConfig returns the default HTTP client configuration.
// Timeouts are bounded: a scheduled run that cannot fetch simply fails and
// waits for the next invocation.
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:             30 * time.Second,
		DialTimeout:         10 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		InsecureSkipVerify:  false,
		EnableHTTP2:         true,
		UserAgent:           "gamewatch/1.0",
		CustomHeaders: map[string]string{
			"Accept":          "*/*",
			"Accept-Language": "en-US,en;q=0.9",
		},
		MaxContentSize: 50 * 1024 * 1024,
	}
}
