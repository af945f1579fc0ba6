package font

import "fmt"
import "context"
import "log/slog"

// Adapts a [slog.Logger] to the Printf-style logger expected by fontscan.
type printfLogger struct {
	logger *slog.Logger
}

func (self printfLogger) Printf(format string, args ...interface{}) {
	if !self.logger.Enabled(context.Background(), slog.LevelDebug) { return }
	self.logger.Debug(fmt.Sprintf(format, args...), "source", "fontscan")
}

// A slog.Handler that silently discards all log records.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
