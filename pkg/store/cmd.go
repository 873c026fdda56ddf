package store

import (
	"encoding/binary"
	"errors"

	bolt "go.etcd.io/bbolt"
	. "src.clint.sh/pkg/store/storedefs"
)

var errBadCmdValue = errors.New("malformed command history value")

// NextCmdSeq returns the next sequence number of the command history.
func (s *dbStore) NextCmdSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddCmd adds a new command and its status to the command history.
func (s *dbStore) AddCmd(text string, status int) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), marshalCmd(text, status))
	})
	return int(seq), err
}

// Cmd queries the command history item with the specified sequence number.
func (s *dbStore) Cmd(seq int) (Cmd, error) {
	var cmd Cmd
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatchingCmd
		}
		var err error
		cmd, err = unmarshalCmd(seq, v)
		return err
	})
	return cmd, err
}

// CmdsWithSeq returns all commands within the specified range, in order.
func (s *dbStore) CmdsWithSeq(from, upto int) ([]Cmd, error) {
	var cmds []Cmd
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketCmd)).Cursor()
		if from < 0 {
			from = 0
		}
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			cmd, err := unmarshalCmd(int(unmarshalSeq(k)), v)
			if err != nil {
				return err
			}
			cmds = append(cmds, cmd)
		}
		return nil
	})
	return cmds, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

// A value is the status as a varint, followed by the text.
func marshalCmd(text string, status int) []byte {
	b := binary.AppendVarint(nil, int64(status))
	return append(b, text...)
}

func unmarshalCmd(seq int, v []byte) (Cmd, error) {
	status, n := binary.Varint(v)
	if n <= 0 {
		return Cmd{}, errBadCmdValue
	}
	return Cmd{Text: string(v[n:]), Status: int(status), Seq: seq}, nil
}
