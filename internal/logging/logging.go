// =============================================================================
// Compute Sales - Logging Module
// =============================================================================
//
// Diagnostic logging is kept apart from report output: the report goes to
// stdout and the report file through the sink, while zap writes operational
// diagnostics to stderr. Nothing logged here ever lands in the report
// artifact.
//
// =============================================================================

package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the tool's diagnostic logger.
//
// PARAMETERS:
//   - level: Minimum level from configuration (debug, info, warn, error).
//   - verbose: When true, switches to the human-readable development
//     encoder at debug level, overriding the configured level.
//
// RETURNS the configured logger, or an error for an unknown level name.
func New(level string, verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg.Build()
	}

	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
