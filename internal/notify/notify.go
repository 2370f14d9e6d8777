// Package notify is the user-facing notification port. The web original
// showed toasts; here the CLI prints and tests capture.
package notify

import (
	"fmt"
	"io"
	"log/slog"
)

type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Writer prints notifications to an io.Writer, one per line.
type Writer struct {
	Out io.Writer
}

func (w *Writer) Success(msg string) { fmt.Fprintf(w.Out, "✔ %s\n", msg) }
func (w *Writer) Error(msg string)   { fmt.Fprintf(w.Out, "✖ %s\n", msg) }
func (w *Writer) Info(msg string)    { fmt.Fprintf(w.Out, "ℹ %s\n", msg) }

// Log mirrors notifications into structured logs.
type Log struct {
	Logger *slog.Logger
}

func (l *Log) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

func (l *Log) Success(msg string) { l.logger().Info("notification", "kind", "success", "msg", msg) }
func (l *Log) Error(msg string)   { l.logger().Error("notification", "kind", "error", "msg", msg) }
func (l *Log) Info(msg string)    { l.logger().Info("notification", "kind", "info", "msg", msg) }

// Discard drops everything; used where notifications would be noise.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}
func (Discard) Info(string)    {}
