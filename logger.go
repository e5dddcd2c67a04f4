package heal

import (
	"log/slog"
	"sync/atomic"
)

var (
	logger  atomic.Pointer[slog.Logger]
	discard = slog.New(slog.DiscardHandler)
)

func init() {
	logger.Store(discard)
}

// SetLogger routes the diagnostics of heal, paint and cmd/gimpheal to l.
// heal is silent until SetLogger is called; nil silences it again.
// It may be called while regions are being healed on other goroutines.
//
// Levels:
//   - [slog.LevelDebug]: per-region solver statistics, skipped dabs
//   - [slog.LevelInfo]: stroke start and finish
//   - [slog.LevelWarn]: regions that hit the iteration cap
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	logger.Store(l)
}

// Logger returns the logger installed with SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
