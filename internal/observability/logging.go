// Package observability provides logger construction for the game master.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/critcheck/internal/config"
)

// NewLogger creates a structured logger from the given logging configuration.
// fields are attached to every entry the logger writes.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
// Postcondition: Returns a configured zap.Logger writing to stderr, or a non-nil error.
func NewLogger(cfg config.LoggingConfig, fields ...zap.Field) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	switch cfg.Format {
	case "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// stdout is reserved for check results.
	zapCfg.OutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.With(fields...), nil
}

// RNGFields returns the fields identifying a randomness source, so a seeded
// run can be replayed from its logs.
func RNGFields(cfg config.RNGConfig) []zap.Field {
	if cfg.Source == "seeded" {
		return []zap.Field{zap.String("rng", cfg.Source), zap.Uint64("seed", cfg.Seed)}
	}
	return []zap.Field{zap.String("rng", cfg.Source)}
}
