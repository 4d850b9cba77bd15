package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/c23fe/c23/internal/watch"
)

func TestAddTreeWatchesEveryDirectory(t *testing.T) {
	w, err := watch.New()
	if err != nil {
		t.Skip("fsnotify not supported: ", err)
	}
	defer w.Close()

	root := t.TempDir()
	sub := filepath.Join(root, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := addTree(w, root); err != nil {
		t.Fatalf("addTree: %v", err)
	}
	// Adding the nested directory a second time, now that addTree already
	// registered it, must not error.
	if err := w.Add(sub); err != nil {
		t.Fatalf("re-adding an already-watched directory should be harmless: %v", err)
	}
}

func TestReparseDoesNotPanicOnMissingFile(t *testing.T) {
	// reparse only logs to stderr; this just exercises the not-found path.
	reparse(filepath.Join(t.TempDir(), "missing.c"))
}
