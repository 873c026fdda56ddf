// Clint is an interactive command-line front end. It reads keystrokes from a
// terminal in raw mode, lets the user edit one line and walk the command
// history, and runs each committed line as a builtin command.
package main

import (
	"os"

	"src.clint.sh/pkg/buildinfo"
	"src.clint.sh/pkg/prog"
	"src.clint.sh/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, shell.Program{})))
}
