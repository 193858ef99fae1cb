// Package logx builds structured loggers suitable for passing to
// gstile.NewPairDriver, which uses one to record per-pair diagnostics
// (spec §7: "logs a diagnostic" for a comparison error). The gstile CLI
// does not use it. It is a small, gstile-scoped adapter around
// go.uber.org/zap and gopkg.in/natefinch/lumberjack.v2, following the
// shape of fulmenhq/gofulmen's logging.Logger (logging/logger.go) without
// that package's multi-tenant policy/profile machinery, which gstile has
// no use for.
package logx

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the sinks and level for a Logger.
type Config struct {
	// Level is one of "debug", "info", "warn", "error". Default "info".
	Level string
	// FilePath, if set, adds a rotating file sink alongside stdout.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New builds a *zap.Logger for cfg. Diagnostics are encoded as JSON with
// a "component":"gstile" field so they can be told apart from a host
// application's own log lines.
func New(cfg Config) (*zap.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	atomicLevel := zap.NewAtomicLevelAt(level)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stdout)), atomicLevel),
	}

	if cfg.FilePath != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    orDefault(cfg.MaxSizeMB, 100),
			MaxBackups: orDefault(cfg.MaxBackups, 5),
			MaxAge:     orDefault(cfg.MaxAgeDays, 28),
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotator), atomicLevel))
	}

	core := zapcore.NewTee(cores...)
	return zap.New(core, zap.Fields(zap.String("component", "gstile"))), nil
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return 0, fmt.Errorf("logx: invalid level %q: %w", level, err)
	}
	return l, nil
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
