package logger

import (
	"go.uber.org/zap"
)

// WrappedLogger is a wrapper to call logging functions in case a logger was passed.
type WrappedLogger struct {
	logger *zap.SugaredLogger
}

// NewWrappedLogger creates a new WrappedLogger. The given logger may be nil, in which case nothing is logged.
func NewWrappedLogger(logger *zap.Logger) *WrappedLogger {
	if logger == nil {
		return &WrappedLogger{}
	}

	return &WrappedLogger{logger: logger.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// Logger returns the underlying logger.
func (l *WrappedLogger) Logger() *zap.SugaredLogger {
	return l.logger
}

// LoggerNamed returns a WrappedLogger whose logger has the given sub-scope added to its name.
func (l *WrappedLogger) LoggerNamed(name string) *WrappedLogger {
	if l.logger == nil {
		return &WrappedLogger{}
	}

	return &WrappedLogger{logger: l.logger.Named(name)}
}

// LogDebugf uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogDebugf(template string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Debugf(template, args...)
	}
}

// LogInfof uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogInfof(template string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Infof(template, args...)
	}
}

// LogWarnf uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogWarnf(template string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Warnf(template, args...)
	}
}

// LogErrorf uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogErrorf(template string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Errorf(template, args...)
	}
}
