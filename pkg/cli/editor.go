// Package cli implements the raw-mode line editor.
//
// The editor reads events from a term.Reader, keeps the draft line, walks the
// history in a histutil.Store, redraws with a term.Writer and hands committed
// lines to a Dispatcher. Everything happens on the caller's goroutine: one
// event, including any redraw and dispatch, is handled completely before the
// next byte is read.
package cli

import (
	"fmt"
	"io"
	"strings"

	"src.clint.sh/pkg/cli/histutil"
	"src.clint.sh/pkg/cli/term"
	"src.clint.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[cli] ")

// Dispatcher runs a command line split into tokens and returns its status.
// A nonzero status means success. It is never called with no tokens.
type Dispatcher interface {
	Execute(tokens []string) int
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(tokens []string) int

// Execute calls f.
func (f DispatcherFunc) Execute(tokens []string) int { return f(tokens) }

// DefaultPrompt is used when EditorConfig.Prompt is empty.
const DefaultPrompt = "~> "

// EditorConfig keeps the dependencies of an Editor. In, Out and Dispatcher
// are required.
type EditorConfig struct {
	In         io.Reader
	Out        io.Writer
	Metrics    term.Metrics
	Prompt     string
	Store      *histutil.Store
	Dispatcher Dispatcher
}

// Editor is the line editor. It is either editing a new line, when the
// history cursor is live, or browsing the history entry under the cursor.
type Editor struct {
	reader     *term.Reader
	writer     *term.Writer
	out        io.Writer
	store      *histutil.Store
	dispatcher Dispatcher

	draft []byte
	// Status of the most recently committed line.
	lastStatus int
	// Status the prompt is currently drawn with.
	shownStatus int
	stopped     bool
}

// NewEditor creates an Editor. The initial status is 1, so the first prompt
// is drawn in the success color.
func NewEditor(cfg EditorConfig) *Editor {
	if cfg.Metrics == nil {
		cfg.Metrics = term.FixedColumns(term.DefaultColumns)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.Store == nil {
		cfg.Store = histutil.NewMemStore()
	}
	return &Editor{
		reader:      term.NewReader(cfg.In),
		writer:      term.NewWriter(cfg.Out, cfg.Metrics, cfg.Prompt),
		out:         cfg.Out,
		store:       cfg.Store,
		dispatcher:  cfg.Dispatcher,
		lastStatus:  1,
		shownStatus: 1,
	}
}

// Run draws the prompt and handles events until the input ends or Stop is
// called. It returns nil in both cases, and the error otherwise.
func (ed *Editor) Run() error {
	ed.writer.Fresh()
	if err := ed.redraw(ed.lastStatus); err != nil {
		return err
	}
	for !ed.stopped {
		event, err := ed.reader.ReadEvent()
		if err == io.EOF {
			logger.Debug("end of input")
			return nil
		} else if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if err := ed.Handle(event); err != nil {
			return err
		}
	}
	return nil
}

// Stop makes Run return after the current event has been handled. It is meant
// to be called by a command during dispatch.
func (ed *Editor) Stop() { ed.stopped = true }

// Draft returns the line being edited.
func (ed *Editor) Draft() string { return string(ed.draft) }

// Browsing reports whether the draft mirrors a history entry.
func (ed *Editor) Browsing() bool { return !ed.store.CurrentIsLive() }

// Status returns the status the prompt is currently drawn with.
func (ed *Editor) Status() int { return ed.shownStatus }

// LastStatus returns the status of the most recently committed line.
func (ed *Editor) LastStatus() int { return ed.lastStatus }

// Handle handles one event. It returns an error only when the output cannot
// be written.
func (ed *Editor) Handle(event term.Event) error {
	switch event := event.(type) {
	case term.AppendChar:
		ed.promote()
		ed.draft = append(ed.draft, byte(event))
		return ed.redraw(ed.lastStatus)
	case term.Backspace:
		ed.promote()
		if len(ed.draft) > 0 {
			ed.draft = ed.draft[:len(ed.draft)-1]
		}
		return ed.redraw(ed.lastStatus)
	case term.HistoryPrev:
		entry, ok := ed.store.MovePrev()
		if !ok {
			return ed.redraw(ed.shownStatus)
		}
		ed.draft = append(ed.draft[:0], entry.Text...)
		return ed.redraw(entry.Status)
	case term.HistoryNext:
		entry, ok := ed.store.MoveNext()
		if !ok {
			ed.draft = ed.draft[:0]
			return ed.redraw(ed.lastStatus)
		}
		ed.draft = append(ed.draft[:0], entry.Text...)
		return ed.redraw(entry.Status)
	case term.Commit:
		return ed.commit()
	case term.Ignored:
		logger.Debug("ignored input", "seq", fmt.Sprintf("%q", event.Seq))
		return nil
	default:
		logger.Warn("unknown event", "event", fmt.Sprintf("%#v", event))
		return nil
	}
}

// promote turns a browsed entry into a new line: the draft keeps the browsed
// text and the history cursor becomes live.
func (ed *Editor) promote() {
	if ed.Browsing() {
		ed.store.GoLive()
	}
}

func (ed *Editor) commit() error {
	if _, err := io.WriteString(ed.out, "\n"); err != nil {
		return err
	}
	line := string(ed.draft)
	ed.draft = ed.draft[:0]
	ed.store.GoLive()

	if tokens := strings.Fields(line); len(tokens) > 0 {
		logger.Debug("dispatching", "tokens", tokens)
		ed.lastStatus = ed.dispatcher.Execute(tokens)
		if err := ed.store.Append(line, ed.lastStatus); err != nil {
			logger.Error("cannot save command to history", "err", err)
		}
	}
	if ed.stopped {
		return nil
	}
	ed.writer.Fresh()
	return ed.redraw(ed.lastStatus)
}

func (ed *Editor) redraw(status int) error {
	ed.shownStatus = status
	return ed.writer.Redraw(string(ed.draft), status)
}
