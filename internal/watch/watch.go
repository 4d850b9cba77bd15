// Package watch notifies cmd/c23watch of changes to .c/.h files under a
// watched directory, using fsnotify for OS-native notifications.
package watch

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Op indicates what kind of change an Event reports.
type Op uint32

const (
	Create Op = 1 << iota
	Write
	Remove
	Rename
)

// Event describes one change to a watched source file.
type Event struct {
	Path string
	Op   Op
}

// Watcher watches a directory tree for changes to .c/.h files, filtering
// out everything else (editor swap files, object output, unrelated
// siblings) before it ever reaches a caller.
type Watcher struct {
	w    *fsnotify.Watcher
	evC  chan Event
	erC  chan error
	done chan struct{}
}

// New creates a Watcher with no directories added yet; call Add to start
// watching one.
func New() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	watcher := &Watcher{w: w, evC: make(chan Event, 128), erC: make(chan error, 1), done: make(chan struct{})}
	go watcher.loop()
	return watcher, nil
}

func (wt *Watcher) loop() {
	defer close(wt.evC)
	for {
		select {
		case ev, ok := <-wt.w.Events:
			if !ok {
				return
			}
			if !isSourceFile(ev.Name) {
				continue
			}
			op := translateOp(ev.Op)
			if op == 0 {
				continue
			}
			select {
			case wt.evC <- Event{Path: ev.Name, Op: op}:
			case <-wt.done:
				return
			}
		case err, ok := <-wt.w.Errors:
			if !ok {
				return
			}
			select {
			case wt.erC <- err:
			case <-wt.done:
				return
			}
		case <-wt.done:
			return
		}
	}
}

func translateOp(op fsnotify.Op) Op {
	var out Op
	if op&fsnotify.Create != 0 {
		out |= Create
	}
	if op&fsnotify.Write != 0 {
		out |= Write
	}
	if op&fsnotify.Remove != 0 {
		out |= Remove
	}
	if op&fsnotify.Rename != 0 {
		out |= Rename
	}
	return out
}

func isSourceFile(path string) bool {
	switch filepath.Ext(path) {
	case ".c", ".h":
		return true
	default:
		return false
	}
}

// Events returns the channel of filtered, translated change events.
func (wt *Watcher) Events() <-chan Event { return wt.evC }

// Errors returns the channel of underlying fsnotify errors.
func (wt *Watcher) Errors() <-chan error { return wt.erC }

// Add starts watching dir (non-recursive, matching fsnotify's own model;
// callers that need a tree walk Add each subdirectory themselves).
func (wt *Watcher) Add(dir string) error { return wt.w.Add(dir) }

// Close stops the watcher and releases the underlying OS resources.
func (wt *Watcher) Close() error {
	close(wt.done)
	return wt.w.Close()
}
