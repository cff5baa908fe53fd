package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config describes the logger to build.
type Config struct {
	ServiceName string
	Env         string
	Level       string // debug/info/warn/error, default info
	Format      string // json or console, default console
	Output      io.Writer
}

// New builds a zap logger that stamps service and env on every entry.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	var level zapcore.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s (must be debug/info/warn/error)", cfg.Level)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(cfg.Output), level)

	var opts []zap.Option
	if cfg.Env != "docker" {
		opts = append(opts, zap.AddCaller())
	}

	return zap.New(core, opts...).With(
		zap.String("service", cfg.ServiceName),
		zap.String("env", cfg.Env),
	), nil
}

// Sync flushes buffered entries, ignoring the harmless errors some
// platforms report for stderr.
func Sync(log *zap.Logger) {
	_ = log.Sync()
}
