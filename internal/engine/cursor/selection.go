package cursor

import "fmt"

// Mode identifies the kind of an active selection.
type Mode uint8

const (
	ModeNone Mode = iota
	ModeLine
	ModeBlock
)

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeBlock:
		return "block"
	default:
		return "none"
	}
}

// Selection is either a LineSelection or a BlockSelection.
// A nil Selection means nothing is selected.
type Selection interface {
	// Mode returns the selection kind.
	Mode() Mode

	// Rows returns the inclusive row range.
	Rows() (top, bottom int)

	// Contains reports whether the cell at row, col is selected.
	Contains(row, col int) bool

	// Shift returns the selection moved by dx columns.
	Shift(dx int) Selection

	isSelection()
}

// ModeOf returns the mode of sel, treating nil as ModeNone.
func ModeOf(sel Selection) Mode {
	if sel == nil {
		return ModeNone
	}
	return sel.Mode()
}

// LineSelection selects whole rows Top..Bottom inclusive.
// Width is the column bound used when filling or rendering the rows.
type LineSelection struct {
	Top    int
	Bottom int
	Width  int
}

// NewLineSelection starts a one-row line selection.
func NewLineSelection(row, width int) LineSelection {
	return LineSelection{Top: row, Bottom: row, Width: max(width, 0)}
}

func (LineSelection) isSelection() {}

// Mode returns ModeLine.
func (LineSelection) Mode() Mode { return ModeLine }

// Rows returns the inclusive row range.
func (s LineSelection) Rows() (int, int) { return s.Top, s.Bottom }

// Contains reports whether row is selected and col is inside the width.
func (s LineSelection) Contains(row, col int) bool {
	return row >= s.Top && row <= s.Bottom && col >= 0 && col < s.Width
}

// Shift returns s unchanged; line selections span whole rows.
func (s LineSelection) Shift(int) Selection { return s }

// Extend returns the selection spanning Top and row, normalized, with the
// new width.
func (s LineSelection) Extend(row, width int) LineSelection {
	return LineSelection{Top: min(s.Top, row), Bottom: max(s.Top, row), Width: max(width, 0)}
}

// String returns a human-readable representation.
func (s LineSelection) String() string {
	return fmt.Sprintf("line[%d..%d w=%d]", s.Top, s.Bottom, s.Width)
}

// BlockSelection selects the inclusive rectangle Top..Bottom × Left..Right.
type BlockSelection struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// NewBlockSelection starts a 1×1 block selection at p.
func NewBlockSelection(p Point) BlockSelection {
	return BlockSelection{Top: p.Row, Bottom: p.Row, Left: p.Col, Right: p.Col}
}

func (BlockSelection) isSelection() {}

// Mode returns ModeBlock.
func (BlockSelection) Mode() Mode { return ModeBlock }

// Rows returns the inclusive row range.
func (s BlockSelection) Rows() (int, int) { return s.Top, s.Bottom }

// Contains reports whether the cell at row, col lies inside the rectangle.
func (s BlockSelection) Contains(row, col int) bool {
	return row >= s.Top && row <= s.Bottom && col >= s.Left && col <= s.Right
}

// Shift returns the rectangle moved by dx columns. The left edge never goes
// below zero; a shift that would do so leaves the rectangle in place.
func (s BlockSelection) Shift(dx int) Selection {
	if s.Left+dx < 0 {
		return s
	}
	s.Left += dx
	s.Right += dx
	return s
}

// Extend returns the rectangle spanning the top-left corner and p,
// normalized per axis.
func (s BlockSelection) Extend(p Point) BlockSelection {
	return BlockSelection{
		Top:    min(s.Top, p.Row),
		Bottom: max(s.Top, p.Row),
		Left:   min(s.Left, p.Col),
		Right:  max(s.Left, p.Col),
	}
}

// Cols returns the half-open column range [Left, Right+1).
func (s BlockSelection) Cols() (from, to int) {
	return s.Left, s.Right + 1
}

// Width returns the number of columns in the rectangle.
func (s BlockSelection) Width() int {
	return s.Right - s.Left + 1
}

// String returns a human-readable representation.
func (s BlockSelection) String() string {
	return fmt.Sprintf("block[%d..%d × %d..%d]", s.Top, s.Bottom, s.Left, s.Right)
}
