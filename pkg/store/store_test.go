package store_test

import (
	"path/filepath"
	"testing"

	"src.clint.sh/pkg/store"
	"src.clint.sh/pkg/store/storetest"
	"src.clint.sh/pkg/testutil"
)

func TestCmd(t *testing.T) {
	storetest.TestCmd(t, store.MustGetTempStore(t))
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dbname := filepath.Join(testutil.TempDir(t), "db")

	st, err := store.NewStore(dbname)
	if err != nil {
		t.Fatalf("NewStore -> error %v", err)
	}
	st.AddCmd("foo", 1)
	st.AddCmd("bar", 0)
	if err := st.Close(); err != nil {
		t.Fatalf("Close -> error %v", err)
	}

	st, err = store.NewStore(dbname)
	if err != nil {
		t.Fatalf("NewStore (reopen) -> error %v", err)
	}
	defer st.Close()
	next, _ := st.NextCmdSeq()
	cmds, err := st.CmdsWithSeq(0, next)
	if err != nil || len(cmds) != 2 {
		t.Fatalf("CmdsWithSeq -> (%v, %v), want 2 commands", cmds, err)
	}
	if cmds[0].Text != "foo" || cmds[0].Status != 1 ||
		cmds[1].Text != "bar" || cmds[1].Status != 0 {
		t.Errorf("reopened store has %v", cmds)
	}
}

func TestNewStore_BadPath(t *testing.T) {
	dir := testutil.TempDir(t)
	_, err := store.NewStore(filepath.Join(dir, "no", "such", "dir", "db"))
	if err == nil {
		t.Errorf("NewStore with bad path -> nil error")
	}
}
