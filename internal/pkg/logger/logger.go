package logger

import (
	"io"
	"log/slog"

	"github.com/doeshing/procsh/internal/ports"
)

// Logger routes diagnostics to a slog text handler.
// When verbose is off only errors are emitted.
type Logger struct {
	log *slog.Logger
}

// NewWithWriter creates a Logger writing to w.
func NewWithWriter(w io.Writer, verbose bool) *Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	return &Logger{log: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return NewWithWriter(io.Discard, false)
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug(msg, attrs(fields)...)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.Info(msg, attrs(fields)...)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn(msg, attrs(fields)...)
}

func (l *Logger) Error(msg string, err error, fields map[string]interface{}) {
	args := attrs(fields)
	if err != nil {
		args = append(args, slog.Any("error", err))
	}
	l.log.Error(msg, args...)
}

func attrs(fields map[string]interface{}) []any {
	out := make([]any, 0, len(fields))
	for k, v := range fields {
		out = append(out, slog.Any(k, v))
	}
	return out
}

var _ ports.Logger = (*Logger)(nil)
