package log

import (
	"context"
	"io"
	"log/slog"
)

// Logger is a leveled logger on top of log/slog.
// Every message carries an optional tag identifying the component that emitted it.
type Logger struct {
	slog  *slog.Logger
	level Level
}

type Tag interface {
	String() string
}

func NewText(w io.Writer) *Logger {
	return newLogger(slog.NewTextHandler(w, handlerOptions()))
}

func NewJson(w io.Writer) *Logger {
	return newLogger(slog.NewJSONHandler(w, handlerOptions()))
}

// Discard returns a logger that drops every message.
func Discard() *Logger {
	l := NewText(io.Discard)
	l.level = LevelFatal + 1
	return l
}

func newLogger(h slog.Handler) *Logger {
	return &Logger{slog: slog.New(h), level: LevelInfo}
}

func handlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:       slog.Level(LevelTrace),
		ReplaceAttr: replaceAttr,
	}
}

// SetLevel sets the logging level and returns the previous level.
func (l *Logger) SetLevel(level Level) (prev Level) {
	prev = l.level
	l.level = level
	return
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return l.level
}

// Enabled reports whether messages at the given level are emitted.
func (l *Logger) Enabled(level Level) bool {
	return l.level <= level
}

// With returns a logger that adds the given key-value pairs to every message.
func (l *Logger) With(v ...any) *Logger {
	return &Logger{slog: l.slog.With(v...), level: l.level}
}

func (l *Logger) log(t any, msg string, level Level, v ...any) {
	if l.level > level {
		return
	}

	if t != nil {
		if tag, ok := t.(Tag); ok {
			v = append([]any{"tag", tag.String()}, v...)
		} else {
			v = append([]any{"tag", t}, v...)
		}
	}

	l.slog.Log(context.Background(), slog.Level(level), msg, v...)
}

// Trace level message.
func (l *Logger) Trace(t any, msg string, v ...any) {
	l.log(t, msg, LevelTrace, v...)
}

// Debug level message.
func (l *Logger) Debug(t any, msg string, v ...any) {
	l.log(t, msg, LevelDebug, v...)
}

// Info level message.
func (l *Logger) Info(t any, msg string, v ...any) {
	l.log(t, msg, LevelInfo, v...)
}

// Warn level message.
func (l *Logger) Warn(t any, msg string, v ...any) {
	l.log(t, msg, LevelWarn, v...)
}

// Error level message.
func (l *Logger) Error(t any, msg string, v ...any) {
	l.log(t, msg, LevelError, v...)
}

// Fatal level message. The caller decides whether to exit.
func (l *Logger) Fatal(t any, msg string, v ...any) {
	l.log(t, msg, LevelFatal, v...)
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		level := a.Value.Any().(slog.Level)
		a.Value = slog.StringValue(Level(level).String())
	}
	return a
}
