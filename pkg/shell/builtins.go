package shell

import (
	"fmt"
	"io"
	"strings"

	"src.clint.sh/pkg/cli/histutil"
	"src.clint.sh/pkg/cli/term"
	"src.clint.sh/pkg/dispatch"
)

// Builds the table of builtin commands. The exit command calls stop, which
// may be nil when there is no session to end.
func newDispatcher(out io.Writer, m term.Metrics, hist *histutil.Store, stop func()) *dispatch.Table {
	t := dispatch.NewTable(out, m)
	t.AddFunc("echo", "Write the arguments, separated by spaces",
		func(args []string) int {
			fmt.Fprintln(out, strings.Join(args, " "))
			return 1
		})
	t.AddFunc("true", "Succeed", func([]string) int { return 1 })
	t.AddFunc("false", "Fail", func([]string) int { return 0 })
	t.AddFunc("exit", "Leave the shell",
		func([]string) int {
			if stop != nil {
				stop()
			}
			return 1
		})

	history := t.Sub()
	history.AddFunc("list", "List all commands in the history, oldest first",
		func([]string) int {
			for i, e := range hist.Entries() {
				fmt.Fprintf(out, "%4d  %s  %s\n", i+1, statusMark(e.Status), e.Text)
			}
			return 1
		})
	history.AddFunc("last", "Show the most recent command",
		func([]string) int {
			e, ok := hist.Last()
			if !ok {
				fmt.Fprintln(out, "History is empty")
				return 0
			}
			fmt.Fprintln(out, e.Text)
			return 1
		})
	t.Add("history", "Inspect the command history", history)
	return t
}

func statusMark(status int) string {
	if status != 0 {
		return "ok"
	}
	return "!!"
}
