// Package logger builds the zap loggers that are used by the replay tooling.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/hive.go/ierrors"
)

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*zap.Logger, error) {
	if cfg.Level == "" {
		cfg.Level = DefaultCfg.Level
	}
	if cfg.StacktraceLevel == "" {
		cfg.StacktraceLevel = DefaultCfg.StacktraceLevel
	}
	if cfg.Encoding == "" {
		cfg.Encoding = DefaultCfg.Encoding
	}
	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = DefaultCfg.OutputPaths
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, ierrors.Wrapf(err, "invalid logger level %q", cfg.Level)
	}

	stacktraceLevel, err := zapcore.ParseLevel(cfg.StacktraceLevel)
	if err != nil {
		return nil, ierrors.Wrapf(err, "invalid logger stacktrace level %q", cfg.StacktraceLevel)
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          cfg.Encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	var opts []zap.Option
	if !cfg.DisableStacktrace {
		opts = append(opts, zap.AddStacktrace(stacktraceLevel))
	}

	root, err := zapCfg.Build(opts...)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to build root logger")
	}

	return root, nil
}
