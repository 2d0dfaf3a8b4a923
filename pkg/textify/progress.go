// File: pkg/textify/progress.go
package textify

import (
	"fmt"
	"io"
)

// ProgressReporter observes collection progress. Reporters are purely
// observational: implementations must swallow render failures so that a
// broken console never aborts processing.
type ProgressReporter interface {
	Start(total int)
	Step(current int, path string)
	Finish()
}

// NopReporter discards all progress events.
type NopReporter struct{}

func (NopReporter) Start(int)        {}
func (NopReporter) Step(int, string) {}
func (NopReporter) Finish()          {}

// ConsoleReporter renders "[current/total] path" progress lines. On a
// terminal the line is rewritten in place; otherwise nothing is rendered,
// keeping piped stderr clean.
type ConsoleReporter struct {
	w     io.Writer
	isTTY bool
	total int
}

// NewConsoleReporter builds a reporter writing to w. isTTY should report
// whether w is an interactive terminal (see golang.org/x/term).
func NewConsoleReporter(w io.Writer, isTTY bool) *ConsoleReporter {
	return &ConsoleReporter{w: w, isTTY: isTTY}
}

// Start records the total candidate count.
func (r *ConsoleReporter) Start(total int) {
	r.total = total
}

// Step renders the current position. Write errors are deliberately
// ignored.
func (r *ConsoleReporter) Step(current int, path string) {
	if !r.isTTY {
		return
	}
	_, _ = fmt.Fprintf(r.w, "\r\x1b[K[%d/%d] %s", current, r.total, path)
}

// Finish clears the progress line.
func (r *ConsoleReporter) Finish() {
	if !r.isTTY {
		return
	}
	_, _ = fmt.Fprint(r.w, "\r\x1b[K")
}
