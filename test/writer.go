package test

import "strings"

// Writer is the simplest of the io.Writer helpers in this package: it
// accumulates everything written to it and can be compared against an
// expected string.
type Writer struct {
	buf strings.Builder
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Compare returns true if s equals everything written to w so far.
func (w *Writer) Compare(s string) bool {
	return w.buf.String() == s
}

// Clear empties the writer's buffer.
func (w *Writer) Clear() {
	w.buf.Reset()
}
