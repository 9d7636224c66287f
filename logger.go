package longtour

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Messages logged by the sub-packages, with their attributes:
//
//	Debug "sweep: done"          segments, skipped, events, intersection
//	Debug "tour: search done"    points, steps, backtracks
//	Warn  "tour: search stopped" points, steps, err (step or time budget hit)
//	Debug "board: solved"        points, length, steps
//	Debug "board: check"         valid, reason, segments, length, reference
//	Info  "level: advance"       index, of

// silentHandler drops every record and reports every level disabled, so a
// call like Logger().Debug(...) costs one atomic load and one method call.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h silentHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h silentHandler) WithGroup(string) slog.Handler           { return h }

var silent = slog.New(silentHandler{})

// installed is the logger set by SetLogger; nil means silent.
var installed atomic.Pointer[slog.Logger]

// SetLogger routes the messages above to l. A nil l silences them again.
// Safe to call while sweeps and searches run on other goroutines.
//
// To see a tour search step by step:
//
//	longtour.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	installed.Store(l)
}

// Logger returns the installed logger, or a silent one.
func Logger() *slog.Logger {
	if l := installed.Load(); l != nil {
		return l
	}

	return silent
}
