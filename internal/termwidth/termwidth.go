// Package termwidth reports the column width of a terminal attached to a
// file descriptor, for wrapping diagnostic source snippets. It returns
// (0, false) when the descriptor is not a terminal (pipes, files, the
// c23serve daemon's log output) so callers can fall back to a fixed width.
package termwidth

// Width returns the terminal column width for fd, or (0, false) if fd is
// not backed by a terminal or the width could not be determined.
func Width(fd uintptr) (int, bool) {
	return width(fd)
}
