package buffer

import (
	"errors"
	"strings"

	"github.com/dshills/vedit/internal/engine/text"
)

// Errors returned by buffer operations.
var (
	ErrRowOutOfRange = errors.New("row out of range")
)

// Split splits text into lines on "\n". The result always has at least one
// element.
func Split(s string) []string {
	return strings.Split(s, "\n")
}

// Join joins lines with "\n".
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}

// Buffer is an ordered, never-empty sequence of lines.
type Buffer struct {
	lines   []string
	metrics text.Metrics
}

// New creates a buffer holding the lines of s.
func New(s string, opts ...Option) *Buffer {
	return FromLines(Split(s), opts...)
}

// FromLines creates a buffer holding a copy of lines.
// An empty slice produces a buffer with one empty line.
func FromLines(lines []string, opts ...Option) *Buffer {
	b := &Buffer{metrics: text.New(text.DefaultTabWidth)}
	for _, opt := range opts {
		opt(b)
	}
	b.setLines(lines)
	return b
}

func (b *Buffer) setLines(lines []string) {
	if len(lines) == 0 {
		b.lines = []string{""}
		return
	}
	b.lines = append(make([]string, 0, len(lines)), lines...)
}

// Metrics returns the display metrics used to measure lines.
func (b *Buffer) Metrics() text.Metrics {
	return b.metrics
}

// Text returns the buffer content joined with "\n".
func (b *Buffer) Text() string {
	return Join(b.lines)
}

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LastRow returns the index of the last line.
func (b *Buffer) LastRow() int {
	return len(b.lines) - 1
}

// Line returns the text of row, or "" if row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// LineWidth returns the display width of row.
func (b *Buffer) LineWidth(row int) int {
	return b.metrics.Width(b.Line(row))
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// ValidRow reports whether row indexes an existing line.
func (b *Buffer) ValidRow(row int) bool {
	return row >= 0 && row < len(b.lines)
}

// ClampRow clamps row into [0, LastRow].
func (b *Buffer) ClampRow(row int) int {
	if row < 0 {
		return 0
	}
	if row > b.LastRow() {
		return b.LastRow()
	}
	return row
}

// SetLine replaces the text of row.
func (b *Buffer) SetLine(row int, s string) error {
	if !b.ValidRow(row) {
		return ErrRowOutOfRange
	}
	b.lines[row] = s
	return nil
}

// InsertLine inserts s so that it becomes row. row may equal LineCount to
// append.
func (b *Buffer) InsertLine(row int, s string) error {
	if row < 0 || row > len(b.lines) {
		return ErrRowOutOfRange
	}
	b.lines = append(b.lines, "")
	copy(b.lines[row+1:], b.lines[row:])
	b.lines[row] = s
	return nil
}

// RemoveLine removes row and returns its text. Removing the only line leaves
// a single empty line.
func (b *Buffer) RemoveLine(row int) (string, error) {
	if !b.ValidRow(row) {
		return "", ErrRowOutOfRange
	}
	s := b.lines[row]
	if len(b.lines) == 1 {
		b.lines[0] = ""
		return s, nil
	}
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	return s, nil
}

// JoinNext appends row+1 to row and removes row+1.
func (b *Buffer) JoinNext(row int) error {
	if !b.ValidRow(row) || !b.ValidRow(row+1) {
		return ErrRowOutOfRange
	}
	next, _ := b.RemoveLine(row + 1)
	b.lines[row] += next
	return nil
}

// SplitLine splits row at byte offset off; the tail becomes row+1.
func (b *Buffer) SplitLine(row, off int) error {
	if !b.ValidRow(row) {
		return ErrRowOutOfRange
	}
	line := b.lines[row]
	if off < 0 {
		off = 0
	}
	if off > len(line) {
		off = len(line)
	}
	b.lines[row] = line[:off]
	return b.InsertLine(row+1, line[off:])
}

// Replace replaces the whole line sequence.
func (b *Buffer) Replace(lines []string) {
	b.setLines(lines)
}

// Restore replaces the buffer content with a snapshot.
func (b *Buffer) Restore(s Snapshot) {
	b.setLines(s.lines)
}

// Snapshot returns an immutable copy of the current lines.
func (b *Buffer) Snapshot() Snapshot {
	return NewSnapshot(b.lines)
}

// Equal reports whether the buffer holds exactly the lines of s.
func (b *Buffer) Equal(s Snapshot) bool {
	return equalLines(b.lines, s.lines)
}

func equalLines(a, c []string) bool {
	if len(a) != len(c) {
		return false
	}
	for i := range a {
		if a[i] != c[i] {
			return false
		}
	}
	return true
}
