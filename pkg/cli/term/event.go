package term

// Event represents a logical edit event decoded from terminal input.
type Event interface{ isEvent() }

// AppendChar is a printable byte to append to the draft.
type AppendChar byte

// Backspace deletes the last byte of the draft.
type Backspace struct{}

// Commit finishes the draft.
type Commit struct{}

// HistoryPrev moves to the previous history entry (the Up key).
type HistoryPrev struct{}

// HistoryNext moves to the next history entry (the Down key).
type HistoryNext struct{}

// Ignored is a control byte or escape sequence that has no meaning to the
// editor. Seq holds the bytes that were consumed.
type Ignored struct{ Seq string }

func (AppendChar) isEvent()  {}
func (Backspace) isEvent()   {}
func (Commit) isEvent()      {}
func (HistoryPrev) isEvent() {}
func (HistoryNext) isEvent() {}
func (Ignored) isEvent()     {}
