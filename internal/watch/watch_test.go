package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSourceFileWrite(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Skip("fsnotify not supported: ", err)
	}
	defer w.Close()

	dir := t.TempDir()
	if err := w.Add(dir); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "f.c")
	go func() {
		_ = os.WriteFile(path, []byte("int x;"), 0o644)
	}()

	select {
	case ev := <-w.Events():
		if ev.Path != path {
			t.Fatalf("got path %q, want %q", ev.Path, path)
		}
		if ev.Op&(Create|Write) == 0 {
			t.Fatalf("got op %v, want Create or Write set", ev.Op)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for fsnotify event")
	}
}

func TestWatcherFiltersNonSourceFiles(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Skip("fsnotify not supported: ", err)
	}
	defer w.Close()

	dir := t.TempDir()
	if err := w.Add(dir); err != nil {
		t.Fatal(err)
	}

	go func() {
		_ = os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644)
		_ = os.WriteFile(filepath.Join(dir, "f.h"), []byte("void f(void);"), 0o644)
	}()

	select {
	case ev := <-w.Events():
		if filepath.Ext(ev.Path) != ".h" {
			t.Fatalf("expected the .txt write to be filtered out, got event for %q", ev.Path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for fsnotify event")
	}
}

func TestIsSourceFile(t *testing.T) {
	cases := map[string]bool{
		"a.c": true, "b.h": true, "c.txt": false, "noext": false,
	}
	for name, want := range cases {
		if got := isSourceFile(name); got != want {
			t.Errorf("isSourceFile(%q) = %v, want %v", name, got, want)
		}
	}
}
