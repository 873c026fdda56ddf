package term

import (
	"os"

	"src.clint.sh/pkg/sys"
)

// DefaultColumns is used when the terminal width cannot be determined.
const DefaultColumns = 80

// Metrics reports the current dimensions of the terminal.
type Metrics interface {
	// Columns returns the current width of the terminal. It is queried anew on
	// every call and is always positive.
	Columns() int
}

// MetricsFunc adapts a function to the Metrics interface.
type MetricsFunc func() int

// Columns calls f.
func (f MetricsFunc) Columns() int { return f() }

// FixedColumns returns Metrics that always report the given width.
func FixedColumns(n int) Metrics { return MetricsFunc(func() int { return n }) }

// NewFileMetrics returns Metrics that query the terminal behind f.
func NewFileMetrics(f *os.File) Metrics {
	return MetricsFunc(func() int {
		_, col := sys.WinSize(f)
		if col <= 0 {
			return DefaultColumns
		}
		return col
	})
}
