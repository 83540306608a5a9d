package xlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/benbjohnson/clock"
)

// New creates a new Logger with the given config.
func New(c Config) *Logger {
	h, leveler := c.BuildHandler()
	return &Logger{handler: h, leveler: leveler, clk: clock.New()}
}

// Logger is a thin wrapper around slog handlers with format helpers and a
// replaceable clock for record timestamps.
type Logger struct {
	handler slog.Handler
	leveler *slog.LevelVar
	clk     clock.Clock
}

func (l *Logger) clone() *Logger {
	c := *l
	return &c
}

// Handler returns l's handler.
func (l *Logger) Handler() slog.Handler { return l.handler }

// SetLevel changes the emitted level dynamically.
func (l *Logger) SetLevel(lvl slog.Level) {
	if l.leveler != nil {
		l.leveler.Set(lvl)
	}
}

// WithClock returns a Logger that stamps records with the given clock.
func (l *Logger) WithClock(clk clock.Clock) *Logger {
	c := l.clone()
	c.clk = clk
	return c
}

// With returns a Logger that includes the given attributes in each output
// operation.
func (l *Logger) With(args ...any) *Logger {
	if len(args) == 0 {
		return l
	}
	c := l.clone()
	c.handler = l.handler.WithAttrs(argsToAttrs(args))
	return c
}

// Enabled reports whether l emits log records at the given level.
func (l *Logger) Enabled(level slog.Level) bool {
	return l.handler.Enabled(context.Background(), level)
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(context.Background(), slog.LevelDebug, msg, args...)
}

// Debugf logs at LevelDebug with the given format.
func (l *Logger) Debugf(format string, args ...any) {
	l.log(context.Background(), slog.LevelDebug, fmt.Sprintf(format, args...))
}

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) {
	l.log(context.Background(), slog.LevelInfo, msg, args...)
}

// Infof logs at LevelInfo with the given format.
func (l *Logger) Infof(format string, args ...any) {
	l.log(context.Background(), slog.LevelInfo, fmt.Sprintf(format, args...))
}

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(context.Background(), slog.LevelWarn, msg, args...)
}

// Warnf logs at LevelWarn with the given format.
func (l *Logger) Warnf(format string, args ...any) {
	l.log(context.Background(), slog.LevelWarn, fmt.Sprintf(format, args...))
}

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) {
	l.log(context.Background(), slog.LevelError, msg, args...)
}

// Errorf logs at LevelError with the given format.
func (l *Logger) Errorf(format string, args ...any) {
	l.log(context.Background(), slog.LevelError, fmt.Sprintf(format, args...))
}

func (l *Logger) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if !l.handler.Enabled(ctx, level) {
		return
	}
	r := slog.NewRecord(l.clk.Now(), level, msg, 0)
	r.Add(args...)
	_ = l.handler.Handle(ctx, r) //nolint:errcheck
}

func argsToAttrs(args []any) []slog.Attr {
	var (
		attrs []slog.Attr
		r     slog.Record
	)
	r.Add(args...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	return attrs
}
