// Package emit provides an indentation-aware line writer used by the code
// generators. It knows nothing about the grammar of what it writes.
package emit

import (
	"fmt"
	"io"
	"strings"
)

// DefaultIndent is the indent unit used for Go output.
const DefaultIndent = "\t"

// Writer writes text at a given indent level to an underlying io.Writer.
//
// The first write error is retained and all later writes become no-ops, so
// callers can emit a whole file and check Err once at the end.
type Writer struct {
	w    io.Writer
	unit string
	err  error
}

// New returns a Writer that indents with unit. An empty unit means
// DefaultIndent.
func New(w io.Writer, unit string) *Writer {
	if unit == "" {
		unit = DefaultIndent
	}
	return &Writer{w: w, unit: unit}
}

// Write writes text at the given indent level without a trailing newline.
func (w *Writer) Write(level int, text string) {
	w.write(strings.Repeat(w.unit, max(level, 0)))
	w.write(text)
}

// WriteLine writes text at the given indent level followed by a newline.
// Empty text produces a bare newline regardless of level.
func (w *Writer) WriteLine(level int, text string) {
	if text != "" {
		w.Write(level, text)
	}
	w.write("\n")
}

// Printf is Write with fmt.Sprintf formatting.
func (w *Writer) Printf(level int, format string, args ...any) {
	w.Write(level, fmt.Sprintf(format, args...))
}

// Linef is WriteLine with fmt.Sprintf formatting.
func (w *Writer) Linef(level int, format string, args ...any) {
	w.WriteLine(level, fmt.Sprintf(format, args...))
}

// Blank writes an empty line.
func (w *Writer) Blank() {
	w.write("\n")
}

// Err returns the first error encountered while writing.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(s string) {
	if w.err != nil || s == "" {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}
