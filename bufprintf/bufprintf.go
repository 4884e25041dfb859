// Package bufprintf adapts segbuf.Buffer to io.Writer so fmt's
// formatting verbs can write straight into buffer space without an
// intermediate allocation, reserving and committing as writes land.
package bufprintf

import (
	"fmt"

	"github.com/tuannm99/segbuf"
)

// Writer is an io.Writer backed by a segbuf.Buffer: each Write call
// reserves space, copies in, and commits, same as Buffer.Add but exposed
// through the io.Writer interface fmt.Fprintf expects.
type Writer struct {
	buf *segbuf.Buffer
}

// NewWriter wraps buf for use with fmt.Fprint/Fprintf/Fprintln.
func NewWriter(buf *segbuf.Buffer) *Writer {
	return &Writer{buf: buf}
}

// Write appends p to the underlying buffer. It never returns a short
// write: len(p), nil on success, or 0, err on allocation failure.
func (w *Writer) Write(p []byte) (int, error) {
	if err := w.buf.Add(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Fprintf formats according to format and appends the result to buf,
// returning the number of bytes written.
func Fprintf(buf *segbuf.Buffer, format string, args ...any) (int, error) {
	return fmt.Fprintf(NewWriter(buf), format, args...)
}

// Fprintln is Fprintf's newline-appending counterpart.
func Fprintln(buf *segbuf.Buffer, args ...any) (int, error) {
	return fmt.Fprintln(NewWriter(buf), args...)
}
