package span

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// file holds one registered source buffer plus its lazily computed line
// index. The index is only built the first time a caller asks for a
// Position or a rendered span, per the "built lazily from a stored byte
// buffer on first query" contract.
type file struct {
	name string
	src  []byte

	once       sync.Once
	lineStarts []int // byte offset of the first byte of each line
}

func (f *file) buildIndex() {
	f.once.Do(func() {
		starts := []int{0}
		for i, b := range f.src {
			if b == '\n' {
				starts = append(starts, i+1)
			}
		}
		f.lineStarts = starts
	})
}

// Map owns a set of source buffers and assigns FileIDs to them.
type Map struct {
	mu    sync.Mutex
	files []*file
}

// NewMap creates an empty source map.
func NewMap() *Map {
	return &Map{}
}

// AddFile registers src under name and returns its FileID.
func (m *Map) AddFile(name string, src []byte) FileID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files = append(m.files, &file{name: name, src: src})
	return FileID(len(m.files) - 1)
}

func (m *Map) file(id FileID) *file {
	if id < 0 || int(id) >= len(m.files) {
		return nil
	}
	return m.files[id]
}

// Name returns the registered filename for id, or "" if unknown.
func (m *Map) Name(id FileID) string {
	if f := m.file(id); f != nil {
		return f.name
	}
	return ""
}

// Text returns the raw bytes covered by sp, or "" if sp is out of range.
func (m *Map) Text(sp Span) string {
	f := m.file(sp.File)
	if f == nil || !sp.IsValid() || sp.End > len(f.src) {
		return ""
	}
	return string(f.src[sp.Start:sp.End])
}

// Position converts a byte offset within a registered file into a
// line/column Position, building that file's line index on first use.
func (m *Map) Position(id FileID, offset int) Position {
	f := m.file(id)
	if f == nil || offset < 0 || offset > len(f.src) {
		return Position{}
	}
	f.buildIndex()

	// Binary search for the last line start <= offset.
	lo, hi := 0, len(f.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	line := lo + 1
	column := offset - f.lineStarts[lo] + 1

	return Position{Filename: f.name, Line: line, Column: column, Offset: offset}
}

// Start returns the starting Position of sp.
func (m *Map) Start(sp Span) Position { return m.Position(sp.File, sp.Start) }

// End returns the ending Position of sp.
func (m *Map) End(sp Span) Position { return m.Position(sp.File, sp.End) }

// String renders sp as "file:line:col" when it starts and ends at the
// same column of one line, "file:line:col-col" when it ends elsewhere on
// that line, and "file:line:col-line:col" when it ends on a later line.
func (m *Map) String(sp Span) string {
	start := m.Start(sp)
	end := m.End(sp)

	if start.Line == end.Line {
		if start.Column == end.Column {
			return start.String()
		}
		return fmt.Sprintf("%s-%d", start.String(), end.Column)
	}
	return fmt.Sprintf("%s-%d:%d", start.String(), end.Line, end.Column)
}

// defaultWidth is used when no terminal is attached to stdout (pipes, CI,
// the network-facing cmd/c23serve example).
const defaultWidth = 80

// Render writes a caret diagnostic for sp: the source line(s) it covers,
// wrapped to width columns (defaultWidth when width <= 0), followed by a
// caret line pointing at the span's start column. Render does not query
// the terminal; callers pass the width they measured.
func (m *Map) Render(w io.Writer, sp Span, width int) {
	f := m.file(sp.File)
	if f == nil || !sp.IsValid() {
		return
	}
	f.buildIndex()

	start := m.Start(sp)
	lineIdx := start.Line - 1
	if lineIdx < 0 || lineIdx >= len(f.lineStarts) {
		return
	}

	lineStart := f.lineStarts[lineIdx]
	lineEnd := len(f.src)
	if lineIdx+1 < len(f.lineStarts) {
		lineEnd = f.lineStarts[lineIdx+1] - 1
	}
	if lineEnd < lineStart {
		lineEnd = lineStart
	}

	line := f.src[lineStart:lineEnd]
	if width <= 0 {
		width = defaultWidth
	}

	fmt.Fprintf(w, "%s\n", m.String(sp))
	for len(line) > 0 {
		chunk := line
		if len(chunk) > width {
			chunk = chunk[:width]
		}
		w.Write(chunk)
		w.Write([]byte("\n"))
		line = line[len(chunk):]
	}

	col := start.Column - 1
	if col < 0 {
		col = 0
	}
	if col > width {
		col = col % width
	}
	w.Write(bytes.Repeat([]byte(" "), col))
	w.Write([]byte("^\n"))
}
