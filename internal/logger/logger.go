package logger

import (
	"github.com/rs/zerolog"
)

// New creates a new logger instance from a file log configuration
func New(cfg FileLogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}
