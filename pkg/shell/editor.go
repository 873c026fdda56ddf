package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// minEditor reads whole lines without raw mode or redrawing. It is used when
// stdin is not a terminal.
type minEditor struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func newMinEditor(in io.Reader, out io.Writer, prompt string) *minEditor {
	return &minEditor{bufio.NewReader(in), out, prompt}
}

// ReadLine writes the prompt and reads one line, without the line ending. At
// the end of input it returns the last unterminated line, if any, with io.EOF.
func (ed *minEditor) ReadLine() (string, error) {
	fmt.Fprint(ed.out, ed.prompt)
	line, err := ed.in.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}
