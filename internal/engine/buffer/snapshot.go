package buffer

// Snapshot is an immutable view of a buffer's lines at a point in time.
// The zero value is an empty snapshot with no lines; snapshots taken from a
// Buffer always have at least one line.
type Snapshot struct {
	lines []string
}

// NewSnapshot creates a snapshot holding a copy of lines.
func NewSnapshot(lines []string) Snapshot {
	if len(lines) == 0 {
		return Snapshot{lines: []string{""}}
	}
	return Snapshot{lines: append(make([]string, 0, len(lines)), lines...)}
}

// Len returns the number of lines.
func (s Snapshot) Len() int {
	return len(s.lines)
}

// Line returns the text of row, or "" if row is out of range.
func (s Snapshot) Line(row int) string {
	if row < 0 || row >= len(s.lines) {
		return ""
	}
	return s.lines[row]
}

// Lines returns a copy of the snapshot's lines.
func (s Snapshot) Lines() []string {
	return append([]string(nil), s.lines...)
}

// Text returns the lines joined with "\n".
func (s Snapshot) Text() string {
	return Join(s.lines)
}

// Equal reports whether two snapshots hold identical lines.
func (s Snapshot) Equal(other Snapshot) bool {
	return equalLines(s.lines, other.lines)
}
