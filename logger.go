package fontchain

import "context"
import "log/slog"
import "sync/atomic"

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the package logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the default logger for fontchain. By default,
// nothing is logged. Chains capture the package logger when they are
// created, unless they are given one explicitly with [WithLogger]().
// Pass nil to restore the default silent behavior.
//
// Log levels used by fontchain:
//   - [slog.LevelDebug]: discarded font variants, system font scanning
//   - [slog.LevelWarn]: font families that failed to load, characters
//     without a glyph in any font of the chain
//
// Example:
//
//	fontchain.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
