// Package progtest contains utilities for testing [prog.Program]
// implementations by running them with captured standard streams.
package progtest

import (
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"src.clint.sh/pkg/prog"
	"src.clint.sh/pkg/testutil"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string

	want result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + quote(o.content)
	}
	return quote(o.content)
}

func quote(s string) string { return "\"" + strings.ReplaceAll(s, "\n", `\n`) + "\"" }

// ThatClint returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "clint -c true" exits with 0 and writes
// nothing can be written as:
//
//	ThatClint("-c", "true").DoesNothing()
func ThatClint(args ...string) Case {
	return Case{args: append([]string{"clint"}, args...)}
}

// WithStdin returns an altered Case that feeds the given string to stdin.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations.
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := Run(t, p, c.stdin, c.args...)
			if r.ExitCode != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", r.ExitCode, c.want.exitCode)
			}
			if !matchOutput(r.Stdout, c.want.stdout) {
				t.Errorf("got stdout %s, want %v", quote(r.Stdout), c.want.stdout)
			}
			if !matchOutput(r.Stderr, c.want.stderr) {
				t.Errorf("got stderr %s, want %v", quote(r.Stderr), c.want.stderr)
			}
		})
	}
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}

// Result keeps the outcome of Run.
type Result struct {
	ExitCode       int
	Stdout, Stderr string
}

// Run runs p with the given arguments, which start with the program name,
// feeding stdin to its standard input. Both outputs are drained while the
// program runs, so it never blocks on a full pipe.
func Run(t testing.TB, p prog.Program, stdin string, args ...string) Result {
	r0, w0 := testutil.MustPipe(t)
	r1, w1 := testutil.MustPipe(t)
	r2, w2 := testutil.MustPipe(t)

	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	var wg sync.WaitGroup
	var res Result
	drain := func(r *os.File, dst *string) {
		defer wg.Done()
		*dst = string(testutil.Must1(io.ReadAll(r)))
	}
	wg.Add(2)
	go drain(r1, &res.Stdout)
	go drain(r2, &res.Stderr)

	res.ExitCode = prog.Run([3]*os.File{r0, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	wg.Wait()
	return res
}
