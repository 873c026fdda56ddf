// Package histutil keeps the command history of an editing session and a
// cursor for walking it.
package histutil

import (
	"src.clint.sh/pkg/store/storedefs"
)

// Entry is a committed line and the status its command returned.
type Entry struct {
	Text   string
	Status int
}

// DB is the interface of the storage database.
type DB interface {
	NextCmdSeq() (int, error)
	AddCmd(text string, status int) (int, error)
	CmdsWithSeq(from, upto int) ([]storedefs.Cmd, error)
}

// Store is an append-only list of entries plus a cursor. A new entry whose
// text equals the last entry's text is not appended.
//
// The cursor is always in [0, Len()]. It is "live" when it equals Len(), which
// means that the user is editing a new line rather than browsing history.
type Store struct {
	entries []Entry
	cursor  int
	db      DB
}

// NewMemStore returns a Store with the given entries that is not backed by a
// database.
func NewMemStore(entries ...Entry) *Store {
	s := &Store{}
	for _, e := range entries {
		s.push(e)
	}
	s.GoLive()
	return s
}

// NewStore returns a Store that is loaded from and writes through to db.
func NewStore(db DB) (*Store, error) {
	upper, err := db.NextCmdSeq()
	if err != nil {
		return nil, err
	}
	cmds, err := db.CmdsWithSeq(0, upper)
	if err != nil {
		return nil, err
	}
	s := &Store{db: db}
	for _, cmd := range cmds {
		s.push(Entry{cmd.Text, cmd.Status})
	}
	s.GoLive()
	return s, nil
}

// push appends e unless it duplicates the last entry. It reports whether e was
// appended.
func (s *Store) push(e Entry) bool {
	if n := len(s.entries); n > 0 && s.entries[n-1].Text == e.Text {
		return false
	}
	s.entries = append(s.entries, e)
	return true
}

// Append appends an entry unless text equals the text of the last entry, and
// makes the cursor live. If the entry is appended and the Store is backed by a
// database, it is also written to the database; an error doing so is
// returned, but the entry stays in the Store.
func (s *Store) Append(text string, status int) error {
	appended := s.push(Entry{text, status})
	s.GoLive()
	if appended && s.db != nil {
		if _, err := s.db.AddCmd(text, status); err != nil {
			return err
		}
	}
	return nil
}

// MovePrev moves the cursor one entry back, stopping at the first entry, and
// returns the entry under the cursor. It returns false if the Store is empty.
func (s *Store) MovePrev() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	if s.cursor > 0 {
		s.cursor--
	}
	return s.entries[s.cursor], true
}

// MoveNext moves the cursor one entry forward, stopping when it becomes live,
// and returns the entry under the cursor. It returns false if the cursor is
// live.
func (s *Store) MoveNext() (Entry, bool) {
	if s.cursor < len(s.entries) {
		s.cursor++
	}
	if s.CurrentIsLive() {
		return Entry{}, false
	}
	return s.entries[s.cursor], true
}

// CurrentIsLive reports whether the cursor is live.
func (s *Store) CurrentIsLive() bool { return s.cursor == len(s.entries) }

// GoLive makes the cursor live without appending anything.
func (s *Store) GoLive() { s.cursor = len(s.entries) }

// Cursor returns the position of the cursor.
func (s *Store) Cursor() int { return s.cursor }

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// Entries returns a copy of all entries, oldest first.
func (s *Store) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Last returns the most recent entry. It returns false if the Store is empty.
func (s *Store) Last() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}
