// Package storetest keeps tests that any implementation of storedefs.Store
// must pass.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.clint.sh/pkg/store/storedefs"
)

// TestCmd tests the command history functionality of a Store. The store must
// be empty.
func TestCmd(t *testing.T, store storedefs.Store) {
	t.Helper()

	startSeq, err := store.NextCmdSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextCmdSeq() => (%v, %v), want (1, nil)", startSeq, err)
	}

	// AddCmd
	cmds := []storedefs.Cmd{
		{Text: "foo", Status: 1},
		{Text: "bar", Status: 0},
		{Text: "foo", Status: 7},
		{Text: "with spaces and \x1b bytes", Status: -3},
		{Text: "", Status: 1},
	}
	for i, cmd := range cmds {
		wantSeq := startSeq + i
		seq, err := store.AddCmd(cmd.Text, cmd.Status)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddCmd(%q, %d) => (%v, %v), want (%v, nil)",
				cmd.Text, cmd.Status, seq, err, wantSeq)
		}
		cmds[i].Seq = wantSeq
	}

	endSeq, err := store.NextCmdSeq()
	wantedEndSeq := startSeq + len(cmds)
	if endSeq != wantedEndSeq || err != nil {
		t.Errorf("store.NextCmdSeq() => (%v, %v), want (%v, nil)",
			endSeq, err, wantedEndSeq)
	}

	// Cmd
	for _, want := range cmds {
		got, err := store.Cmd(want.Seq)
		if got != want || err != nil {
			t.Errorf("store.Cmd(%v) => (%v, %v), want (%v, nil)",
				want.Seq, got, err, want)
		}
	}
	if _, err := store.Cmd(endSeq); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("store.Cmd(%v) => error %v, want ErrNoMatchingCmd", endSeq, err)
	}

	// CmdsWithSeq
	all, err := store.CmdsWithSeq(0, endSeq)
	if err != nil {
		t.Errorf("store.CmdsWithSeq(0, %v) => error %v", endSeq, err)
	}
	if diff := cmp.Diff(cmds, all); diff != "" {
		t.Errorf("store.CmdsWithSeq(0, %v) (-want +got):\n%s", endSeq, diff)
	}
	some, err := store.CmdsWithSeq(startSeq+1, startSeq+3)
	if err != nil {
		t.Errorf("store.CmdsWithSeq => error %v", err)
	}
	if diff := cmp.Diff(cmds[1:3], some); diff != "" {
		t.Errorf("store.CmdsWithSeq(%v, %v) (-want +got):\n%s",
			startSeq+1, startSeq+3, diff)
	}
	none, err := store.CmdsWithSeq(endSeq, endSeq+10)
	if len(none) != 0 || err != nil {
		t.Errorf("store.CmdsWithSeq past the end => (%v, %v), want (empty, nil)",
			none, err)
	}
}
