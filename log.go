package kvshape

import (
	"log/slog"
	"sync"
)

var (
	loggerMu      sync.RWMutex
	currentLogger = slog.New(slog.DiscardHandler)
)

// SetLogger replaces the logger used to trace assembly decisions; nil
// restores the default discard logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	loggerMu.Lock()
	currentLogger = l
	loggerMu.Unlock()
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	loggerMu.RLock()
	l := currentLogger
	loggerMu.RUnlock()
	return l
}
