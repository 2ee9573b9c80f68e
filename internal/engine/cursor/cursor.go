package cursor

import (
	"github.com/dshills/vedit/internal/engine/buffer"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Cursor is the insertion point of an editing session.
// Cursor is an immutable value type.
type Cursor struct {
	Row int
	Col int
}

// New creates a cursor at row and col, clamping negatives to zero.
func New(row, col int) Cursor {
	return Cursor{Row: max(row, 0), Col: max(col, 0)}
}

// Point returns the cursor position as a Point.
func (c Cursor) Point() Point {
	return Point{Row: c.Row, Col: c.Col}
}

// Move applies a row/column delta.
//
// The row is clamped to [0, lastRow]. With virtual enabled the column is
// only floored at zero and may exceed the line width; otherwise it is
// clamped to [0, width(row)].
func (c Cursor) Move(dx, dy, lastRow int, virtual bool, width func(row int) int) Cursor {
	row := min(max(c.Row+dy, 0), max(lastRow, 0))
	col := max(c.Col+dx, 0)
	if !virtual {
		col = min(col, width(row))
	}
	return Cursor{Row: row, Col: col}
}

// Clamp returns a cursor inside the buffer: row in [0, lastRow] and column in
// [0, width(row)].
func (c Cursor) Clamp(lastRow int, width func(row int) int) Cursor {
	row := min(max(c.Row, 0), max(lastRow, 0))
	col := min(max(c.Col, 0), width(row))
	return Cursor{Row: row, Col: col}
}

// InVirtualSpace reports whether the cursor sits beyond lineWidth.
func (c Cursor) InVirtualSpace(lineWidth int) bool {
	return c.Col > lineWidth
}
