package dispatch

import (
	"fmt"
	"strings"
)

const (
	helpUsage       = "help [-v]"
	helpDescription = "Show this message"
	// Gap between the name column and the description column.
	helpGap = 4
)

func (t *Table) help(args []string) int {
	names := t.Names()
	if len(args) == 1 && args[0] == "-v" {
		width := len(helpUsage)
		for _, n := range names {
			width = max(width, len(n.Name))
		}
		width += helpGap
		for _, n := range names {
			t.printFull(n.Name, width, n.Description)
		}
		t.printFull(helpUsage, width, helpDescription)
		return 1
	}
	var sb strings.Builder
	sb.WriteString("List of options: ")
	for _, n := range names {
		sb.WriteString(n.Name)
		sb.WriteString(", ")
	}
	sb.WriteString(helpUsage)
	fmt.Fprintln(t.out, sb.String())
	return 1
}

// printFull prints name padded to offset, followed by desc wrapped to the
// terminal width. Continuation lines are indented by offset.
func (t *Table) printFull(name string, offset int, desc string) {
	if desc == "" {
		fmt.Fprintln(t.out, name)
		return
	}
	width := t.metrics.Columns() - offset
	if width <= 0 {
		width = len(desc)
	}
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(strings.Repeat(" ", offset-len(name)))
	for pos := 0; pos < len(desc); pos += width {
		if pos > 0 {
			sb.WriteString(strings.Repeat(" ", offset))
		}
		sb.WriteString(desc[pos:min(pos+width, len(desc))])
		sb.WriteByte('\n')
	}
	fmt.Fprint(t.out, sb.String())
}
