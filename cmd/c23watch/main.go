// Command c23watch watches a directory tree of .c/.h files and re-parses
// whichever one changes, printing its diagnostics as soon as they are
// available. It exists for editor/build-tool integrations that want
// incremental feedback without re-invoking a whole build.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/c23fe/c23/diag"
	"github.com/c23fe/c23/internal/termwidth"
	"github.com/c23fe/c23/internal/watch"
	"github.com/c23fe/c23/lexer"
	"github.com/c23fe/c23/parser"
	"github.com/c23fe/c23/span"
)

func main() {
	var debounce time.Duration
	flag.DurationVar(&debounce, "debounce", 50*time.Millisecond, "minimum quiet time before a changed file is re-parsed")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: c23watch [-debounce 50ms] <directory>")
		os.Exit(2)
	}
	root := flag.Arg(0)

	w, err := watch.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "c23watch: %v\n", err)
		os.Exit(1)
	}
	defer w.Close()

	if err := addTree(w, root); err != nil {
		fmt.Fprintf(os.Stderr, "c23watch: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "c23watch: watching %s\n", root)

	pending := map[string]time.Time{}
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-w.Events():
			if !ok {
				return
			}
			if ev.Op&watch.Remove != 0 {
				delete(pending, ev.Path)
				continue
			}
			pending[ev.Path] = time.Now()
		case err, ok := <-w.Errors():
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "c23watch: watcher error: %v\n", err)
		case now := <-ticker.C:
			for path, changedAt := range pending {
				if now.Sub(changedAt) < debounce {
					continue
				}
				delete(pending, path)
				reparse(path)
			}
		}
	}
}

// addTree registers root and every subdirectory with w, since fsnotify
// only watches the directories it is explicitly told about.
func addTree(w *watch.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}

func reparse(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return
	}

	lexed := lexer.Lex(src, lexer.Options{Filename: path, AcceptVendorExtensions: true})
	_, parseDiags := parser.ParseTranslationUnit(lexed.Tokens, parser.NewState())
	diags := append(append([]diag.Diagnostic{}, lexed.Diagnostics...), parseDiags...)

	if len(diags) == 0 {
		fmt.Fprintf(os.Stderr, "%s: ok\n", path)
		return
	}
	renderDiagnostics(os.Stderr, lexed.Map, diags)
}

func renderDiagnostics(w *os.File, m *span.Map, diags []diag.Diagnostic) {
	width, ok := termwidth.Width(w.Fd())
	if !ok {
		width = 0
	}
	for _, d := range diags {
		fmt.Fprintf(w, "%s: %s: %s\n", m.String(d.Span), d.Severity, d.Message)
		m.Render(w, d.Span, width)
	}
}
