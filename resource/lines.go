package resource

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/ovsyannikovviva64/analysis-model/internal/textline"
)

// Lines is a lazily produced, finite, forward-only sequence of text lines.
// Iterate with Next and Text, check Err after iteration, and Close on every
// exit path to release the underlying handle.
type Lines struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

func newLines(src io.Reader, closer io.Closer) *Lines {
	scanner := bufio.NewScanner(src)
	// Fixture lines regularly exceed bufio's 64KB default, e.g. single-line
	// JSON payloads. Line length is bounded only by memory, like the eager
	// whole-file reads; the buffer grows on demand.
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	scanner.Split(textline.Split)
	return &Lines{scanner: scanner, closer: closer}
}

// Next advances to the next line, reporting false at the end of the sequence
// or on a read error.
func (l *Lines) Next() bool {
	return l.scanner.Scan()
}

// Text returns the current line without its terminator.
func (l *Lines) Text() string {
	return l.scanner.Text()
}

// Err returns the first error encountered while reading, if any.
func (l *Lines) Err() error {
	return l.scanner.Err()
}

// Close releases the underlying handle. It is a no-op for line sequences
// built from an in-memory string.
func (l *Lines) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Slurp drains the remaining lines into a slice.
func (l *Lines) Slurp() ([]string, error) {
	var lines []string
	for l.Next() {
		lines = append(lines, l.Text())
	}
	return lines, l.Err()
}

// StringLines splits an in-memory string into a line sequence using the same
// boundary rules as Lines, without touching the filesystem. Closing it is
// allowed but not required.
func StringLines(text string) *Lines {
	return newLines(strings.NewReader(text), nil)
}
