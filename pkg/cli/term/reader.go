// Package term decodes terminal input and redraws the prompt line.
package term

import (
	"io"
)

const (
	byteEnter     = '\n'
	byteEscape    = 0x1b
	byteBackspace = 0x7f
)

// Give up when the underlying reader keeps returning nothing without an error.
const maxNoProgress = 10

// Reader decodes a raw byte stream into events. Except while an escape
// sequence is being read, it keeps no state between events.
type Reader struct {
	r   io.Reader
	eof bool
}

// NewReader returns a Reader that reads from r. Reads from r may block; the
// Reader never times out on its own.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadEvent reads a single event. It returns io.EOF once the byte source is
// exhausted. If the source ends in the middle of an escape sequence, the
// partial sequence is returned as Ignored and the next call returns io.EOF.
func (rd *Reader) ReadEvent() (Event, error) {
	b, err := rd.readByte()
	if err != nil {
		return nil, err
	}
	switch {
	case b == byteEnter:
		return Commit{}, nil
	case b == byteBackspace:
		return Backspace{}, nil
	case b == byteEscape:
		return rd.readEscape()
	case b < 0x20:
		return Ignored{Seq: string(b)}, nil
	default:
		return AppendChar(b), nil
	}
}

// readEscape reads the two bytes that follow an ESC. Both bytes always belong
// to the sequence, so a DEL inside it is never decoded as a Backspace.
func (rd *Reader) readEscape() (Event, error) {
	seq := []byte{byteEscape}
	for len(seq) < 3 {
		b, err := rd.readByte()
		if err == io.EOF {
			return Ignored{Seq: string(seq)}, nil
		} else if err != nil {
			return nil, err
		}
		seq = append(seq, b)
	}
	if seq[1] == '[' {
		switch seq[2] {
		case 'A':
			return HistoryPrev{}, nil
		case 'B':
			return HistoryNext{}, nil
		}
	}
	return Ignored{Seq: string(seq)}, nil
}

func (rd *Reader) readByte() (byte, error) {
	if rd.eof {
		return 0, io.EOF
	}
	var buf [1]byte
	for i := 0; i < maxNoProgress; i++ {
		n, err := rd.r.Read(buf[:])
		if err == io.EOF {
			rd.eof = true
		}
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
	return 0, io.ErrNoProgress
}
