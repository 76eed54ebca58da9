// Package logging builds the zap loggers used across the viewer and carries them through contexts.
package logging

import (
	"context"
	"os"

	"github.com/Carmen-Shannon/oxy-gl/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKeyType string

const loggerKey = loggerKeyType("logger")

var rootLogger = zap.NewNop()

// New builds a logger from the logging configuration.
// Development mode writes colored console output; otherwise JSON lines are written to stderr.
//
// Parameters:
//   - cfg: logging configuration
//
// Returns:
//   - *zap.Logger: the configured logger
//   - error: error if the level is unknown
func New(cfg config.Logging) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var encoder zapcore.Encoder
	if cfg.Development {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	logger := zap.New(core, zap.AddCaller())
	logger.With(zap.Bool("devmode", cfg.Development)).Debug("Logging initialized")
	return logger, nil
}

// ParseLevel maps a level name to a zap level.
//
// Parameters:
//   - name: debug, info, warn or error (case-insensitive, empty means info)
//
// Returns:
//   - zapcore.Level: the level
//   - error: error if the name is unknown
func ParseLevel(name string) (zapcore.Level, error) {
	return config.Logging{Level: name}.ZapLevel()
}

// SetRoot replaces the logger returned by From for contexts without a logger.
func SetRoot(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rootLogger = logger
}

// From returns the logger of the current context, if no logger is available, returns the root logger
func From(ctx context.Context) *zap.Logger {
	l, ok := ctx.Value(loggerKey).(*zap.Logger)
	if !ok || l == nil {
		return rootLogger
	}
	return l
}

func SubFrom(ctx context.Context, name string) (*zap.Logger, context.Context) {
	logger := From(ctx).Named(name)
	return logger, Context(ctx, logger)
}

func Context(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		logger = rootLogger
	}
	return context.WithValue(ctx, loggerKey, logger)
}
