package term

import (
	"bytes"
	"fmt"
	"io"
)

// Text styling sequences.
const (
	Bold  = "\033[1m"
	Reset = "\033[0m"
	Green = "\033[0;32m"
	Red   = "\033[0;31m"
)

const (
	clearToEnd = "\033[0J"
	toColumn0  = "\033[0G"
)

// StatusColor returns the color for a prompt following a command that
// returned status. A nonzero status means success.
func StatusColor(status int) string {
	if status != 0 {
		return Green
	}
	return Red
}

// LineCount returns the number of terminal lines taken by n bytes of text on a
// terminal that is cols wide.
func LineCount(n, cols int) int {
	if cols <= 0 {
		cols = DefaultColumns
	}
	return (n + cols - 1) / cols
}

// Writer redraws the prompt line in place.
type Writer struct {
	out     io.Writer
	metrics Metrics
	prompt  string

	// What was drawn last, relative to the start of the block.
	drawnBody   string
	drawnStatus int
}

// NewWriter returns a Writer that draws prompt and a body on out.
func NewWriter(out io.Writer, m Metrics, prompt string) *Writer {
	return &Writer{out: out, metrics: m, prompt: prompt}
}

// Prompt returns the prompt.
func (w *Writer) Prompt() string { return w.prompt }

// Drawn returns the body and status drawn last.
func (w *Writer) Drawn() (body string, status int) {
	return w.drawnBody, w.drawnStatus
}

// Fresh makes the Writer forget what it has drawn, so that the next Redraw
// starts on the current line without moving up. It should be called once the
// cursor has left the previously drawn block.
func (w *Writer) Fresh() {
	w.drawnBody = ""
}

// Redraw erases the previously drawn block and draws the prompt, colored
// according to status, followed by body. The terminal width is queried on
// every call.
func (w *Writer) Redraw(body string, status int) error {
	output := new(bytes.Buffer)

	n := LineCount(len(w.prompt)+len(w.drawnBody), w.metrics.Columns())
	if n > 1 {
		// Move up n-1 lines, to column 0.
		fmt.Fprintf(output, "\033[%dF", n-1)
	} else {
		output.WriteString(toColumn0)
	}
	output.WriteString(clearToEnd)

	output.WriteString(Bold)
	output.WriteString(StatusColor(status))
	output.WriteString(w.prompt)
	output.WriteString(Reset)
	output.WriteString(body)

	if _, err := w.out.Write(output.Bytes()); err != nil {
		return err
	}
	w.drawnBody, w.drawnStatus = body, status
	return nil
}
