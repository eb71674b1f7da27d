package logger

import (
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/mattn/go-isatty"
)

// StdLogger is a lightweight implementation backed by log/slog.
type StdLogger struct {
	log *slog.Logger
}

// NewStd creates a StdLogger writing to stderr. Terminals get the text
// handler, pipes and redirects get JSON. Debug output requires verbose.
func NewStd(verbose bool) *StdLogger {
	return New(os.Stderr, isTerminal(os.Stderr), verbose)
}

// New creates a StdLogger writing to w.
func New(w io.Writer, text, verbose bool) *StdLogger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return &StdLogger{log: slog.New(handler)}
}

// NewNop returns a logger that discards everything.
func NewNop() *StdLogger {
	return New(io.Discard, true, false)
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug(msg, attrs(fields)...)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info(msg, attrs(fields)...)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn(msg, attrs(fields)...)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	args := attrs(fields)
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
	}
	l.log.Error(msg, args...)
}

// attrs orders fields by key so the same event always renders the same way.
func attrs(fields map[string]interface{}) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(fields))
	for _, k := range keys {
		args = append(args, slog.Any(k, fields[k]))
	}
	return args
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
