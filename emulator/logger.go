package emulator

import (
	"context"
	"log/slog"
)

// discards every record, Enabled returns false so nothing gets formatted
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var logger = slog.New(nopHandler{})

// Sets the logger used by the emulator. By default nothing is logged, pass
// nil to go back to that. Commands that are acknowledged but not rendered are
// reported at debug level, state changes at debug level too.
//
// Not safe to call while a GPU is processing commands
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger = l
}

// Returns the current logger
func Logger() *slog.Logger {
	return logger
}
