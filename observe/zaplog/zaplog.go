// Package zaplog provides a zap-backed scheduler observer. Task start and
// finish are logged at debug level, panics at error level.
package zaplog

import (
	"time"

	"go.uber.org/zap"
)

// Logger implements observe.Observer on top of a *zap.Logger.
type Logger struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{log: log}
}

func (l *Logger) TaskStarted() {
	l.log.Debug("task started")
}

func (l *Logger) TaskFinished(d time.Duration, panicked bool) {
	if panicked {
		l.log.Error("task panicked", zap.Duration("duration", d))
		return
	}
	l.log.Debug("task finished", zap.Duration("duration", d))
}
