package term

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"src.clint.sh/pkg/tt"
)

func TestLineCount(t *testing.T) {
	tt.Test(t, tt.Fn("LineCount", LineCount), tt.Table{
		tt.Args(0, 80).Rets(0),
		tt.Args(1, 80).Rets(1),
		// Prompt "~> " plus "list files".
		tt.Args(3+10, 80).Rets(1),
		tt.Args(79, 80).Rets(1),
		// Exact multiples do not take an extra line.
		tt.Args(80, 80).Rets(1),
		tt.Args(81, 80).Rets(2),
		tt.Args(160, 80).Rets(2),
		tt.Args(161, 80).Rets(3),
		tt.Args(10, 1).Rets(10),
		// Nonsensical widths fall back to the default.
		tt.Args(81, 0).Rets(2),
		tt.Args(81, -5).Rets(2),
	})
}

func TestStatusColor(t *testing.T) {
	tt.Test(t, tt.Fn("StatusColor", StatusColor), tt.Table{
		tt.Args(1).Rets(Green),
		tt.Args(42).Rets(Green),
		tt.Args(-1).Rets(Green),
		tt.Args(0).Rets(Red),
	})
}

func TestRedraw_FirstDraw(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FixedColumns(80), "~> ")

	if err := w.Redraw("", 1); err != nil {
		t.Fatal(err)
	}
	want := "\033[0G\033[0J" + "\033[1m\033[0;32m~> \033[0m"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRedraw_FailureColor(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FixedColumns(80), "~> ")

	w.Redraw("zzz", 0)
	want := "\033[0G\033[0J" + "\033[1m\033[0;31m~> \033[0m" + "zzz"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRedraw_ErasesWrappedBlock(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FixedColumns(10), "> ")

	// 2 + 19 = 21 bytes on a 10-column terminal: 3 lines.
	w.Redraw(strings.Repeat("x", 19), 1)
	buf.Reset()
	w.Redraw("y", 1)

	want := "\033[2F\033[0J" + "\033[1m\033[0;32m> \033[0m" + "y"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRedraw_ExactMultipleOfWidth(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FixedColumns(10), "> ")

	// 2 + 8 = 10 bytes: exactly one line.
	w.Redraw(strings.Repeat("x", 8), 1)
	buf.Reset()
	w.Redraw("", 1)

	if got := buf.String(); !strings.HasPrefix(got, "\033[0G\033[0J") {
		t.Errorf("got %q, want it to start at column 0 of the current line", got)
	}
}

func TestRedraw_QueriesColumnsEveryTime(t *testing.T) {
	var buf bytes.Buffer
	cols := 80
	queries := 0
	w := NewWriter(&buf, MetricsFunc(func() int { queries++; return cols }), "> ")

	w.Redraw(strings.Repeat("x", 18), 1)
	// The terminal shrinks: the 20 bytes now take 2 lines.
	cols = 10
	buf.Reset()
	w.Redraw("", 1)

	if queries != 2 {
		t.Errorf("columns queried %d times, want 2", queries)
	}
	if got := buf.String(); !strings.HasPrefix(got, "\033[1F\033[0J") {
		t.Errorf("got %q, want it to move up 1 line", got)
	}
}

func TestFresh(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FixedColumns(10), "> ")

	w.Redraw(strings.Repeat("x", 30), 1)
	w.Fresh()
	buf.Reset()
	w.Redraw("", 0)

	if got := buf.String(); !strings.HasPrefix(got, "\033[0G\033[0J") {
		t.Errorf("got %q, want no upward movement after Fresh", got)
	}
}

func TestRedraw_SingleWrite(t *testing.T) {
	cw := &countingWriter{}
	w := NewWriter(cw, FixedColumns(80), "> ")
	w.Redraw("abc", 1)
	if cw.writes != 1 {
		t.Errorf("Redraw issued %d writes, want 1", cw.writes)
	}
}

var errWrite = errors.New("write error")

func TestRedraw_WriteError(t *testing.T) {
	w := NewWriter(failWriter{}, FixedColumns(80), "> ")
	if err := w.Redraw("abc", 1); err != errWrite {
		t.Errorf("Redraw -> %v, want errWrite", err)
	}
	if body, _ := w.Drawn(); body != "" {
		t.Errorf("Drawn body after failed write = %q, want empty", body)
	}
}

type countingWriter struct{ writes int }

func (cw *countingWriter) Write(p []byte) (int, error) {
	cw.writes++
	return len(p), nil
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }
