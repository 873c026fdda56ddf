package term

import "sync"

// RawMode is a terminal that has been switched to raw mode by Acquire. It
// must be released exactly once; Release is safe to call any number of times
// and from any goroutine, and only the first call restores the terminal.
type RawMode struct {
	restore func() error
	once    sync.Once
	err     error
}

// Release restores the terminal configuration captured by Acquire. Calls
// after the first return the result of the first call.
func (rm *RawMode) Release() error {
	rm.once.Do(func() {
		rm.err = rm.restore()
		logger.Debug("terminal restored", "err", rm.err)
	})
	return rm.err
}
