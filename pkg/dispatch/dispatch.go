// Package dispatch maps command names to handlers.
//
// A Command is either a Leaf, which runs a function, or a *Table, which
// dispatches the remaining tokens to its own commands. Tables nest to any
// depth.
//
// Statuses follow the editor's convention: nonzero means success.
package dispatch

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"src.clint.sh/pkg/cli/term"
	"src.clint.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[dispatch] ")

// Func handles a command. It receives the tokens after the command name and
// returns a status.
type Func func(args []string) int

// Command is a Leaf or a *Table.
type Command interface{ isCommand() }

// Leaf runs a function.
type Leaf struct{ Fn Func }

func (Leaf) isCommand()   {}
func (*Table) isCommand() {}

// Name is a command name and its description.
type Name struct {
	Name        string
	Description string
}

type entry struct {
	cmd         Command
	description string
}

// Maximum number of suggestions shown for an unknown command.
const maxSuggestions = 3

// Table dispatches on the first token.
type Table struct {
	out     io.Writer
	metrics term.Metrics
	entries map[string]entry
	// When set, "help" is not handled specially and is looked up like any
	// other name.
	HideHelp bool
}

// NewTable returns an empty Table that writes messages to out, and uses m to
// wrap help text.
func NewTable(out io.Writer, m term.Metrics) *Table {
	return &Table{out: out, metrics: m, entries: map[string]entry{}}
}

// Sub returns an empty Table that shares the output and metrics of t. It is
// not added to t.
func (t *Table) Sub() *Table { return NewTable(t.out, t.metrics) }

// Add adds a command, replacing any command with the same name.
func (t *Table) Add(name, description string, cmd Command) *Table {
	t.entries[name] = entry{cmd, description}
	return t
}

// AddFunc adds a Leaf running fn.
func (t *Table) AddFunc(name, description string, fn Func) *Table {
	return t.Add(name, description, Leaf{fn})
}

// Names returns all command names, sorted.
func (t *Table) Names() []Name {
	names := make([]Name, 0, len(t.entries))
	for name, e := range t.entries {
		names = append(names, Name{name, e.description})
	}
	sort.Slice(names, func(i, j int) bool { return names[i].Name < names[j].Name })
	return names
}

// Execute runs the command named by tokens[0] with the remaining tokens.
// Unknown names are reported on the output and give status 0.
func (t *Table) Execute(tokens []string) int {
	if len(tokens) == 0 {
		fmt.Fprintln(t.out, "Not enough arguments")
		return 0
	}
	name, args := tokens[0], tokens[1:]
	if name == "help" && !t.HideHelp {
		return t.help(args)
	}
	e, ok := t.entries[name]
	if !ok {
		t.reportMiss(name)
		return 0
	}
	switch cmd := e.cmd.(type) {
	case Leaf:
		return cmd.Fn(args)
	case *Table:
		return cmd.Execute(args)
	}
	logger.Error("unexpected command type", "name", name, "type", fmt.Sprintf("%T", e.cmd))
	return 0
}

func (t *Table) reportMiss(name string) {
	logger.Debug("command not found", "name", name)
	fmt.Fprintf(t.out, "%s is not defined\n", name)

	candidates := make([]string, 0, len(t.entries))
	for _, n := range t.Names() {
		candidates = append(candidates, n.Name)
	}
	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 {
		return
	}
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	suggestions := make([]string, len(matches))
	for i, m := range matches {
		suggestions[i] = m.Str
	}
	fmt.Fprintf(t.out, "Did you mean: %s?\n", strings.Join(suggestions, ", "))
}
