package engine

import (
	"strings"

	"github.com/dshills/vedit/internal/engine/cursor"
)

// ============================================================================
// Selection
// ============================================================================

// SelectLine starts a one-row line selection at the cursor, or extends an
// active line selection to the cursor row. The selection width is the
// right edge of the viewport.
func (e *Editor) SelectLine() {
	right := e.scrollX + e.viewWidth
	if ls, ok := e.sel.(cursor.LineSelection); ok {
		e.sel = ls.Extend(e.cur.Row, right)
		return
	}
	e.sel = cursor.NewLineSelection(e.cur.Row, right)
}

// SelectBlock starts a 1×1 block selection at the cursor, or extends an
// active block selection to the cursor.
func (e *Editor) SelectBlock() {
	if bs, ok := e.sel.(cursor.BlockSelection); ok {
		e.sel = bs.Extend(e.cur.Point())
		return
	}
	e.sel = cursor.NewBlockSelection(e.cur.Point())
}

// Deselect clears the selection.
func (e *Editor) Deselect() {
	e.sel = nil
}

// selectedRows returns the selection's row range clamped to the buffer.
func (e *Editor) selectedRows() (top, bottom int, ok bool) {
	if e.sel == nil {
		return 0, 0, false
	}
	top, bottom = e.sel.Rows()
	top = max(top, 0)
	bottom = min(bottom, e.buf.LastRow())
	return top, bottom, top <= bottom
}

// SelectedText returns the selected rows joined with "\n". A block
// selection yields the space-padded rectangle content.
func (e *Editor) SelectedText() string {
	top, bottom, ok := e.selectedRows()
	if !ok {
		return ""
	}
	rows := make([]string, 0, bottom-top+1)
	for row := top; row <= bottom; row++ {
		line := e.buf.Line(row)
		if bs, isBlock := e.sel.(cursor.BlockSelection); isBlock {
			from, to := bs.Cols()
			line = e.metrics.Extract(line, from, to)
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}

// FillSelection overwrites the selection with r and clears it. Line
// selections replace whole rows with r repeated to the selection width;
// block selections replace exactly the rectangle columns.
func (e *Editor) FillSelection(r rune) error {
	if e.ReadOnly() {
		return nil
	}
	top, bottom, ok := e.selectedRows()
	if !ok {
		return ErrNoSelection
	}
	e.saveState()

	switch s := e.sel.(type) {
	case cursor.LineSelection:
		fill := e.metrics.Fill(r, s.Width)
		for row := top; row <= bottom; row++ {
			_ = e.buf.SetLine(row, fill)
		}
	case cursor.BlockSelection:
		from, to := s.Cols()
		fill := e.metrics.Fill(r, to-from)
		for row := top; row <= bottom; row++ {
			_ = e.buf.SetLine(row, e.metrics.ReplaceColumns(e.buf.Line(row), from, to, fill))
		}
	}

	e.modified = true
	e.sel = nil
	if !e.virtual {
		e.clampCursor()
	}
	return nil
}

// MoveBlockRight shifts the selected content one column right.
func (e *Editor) MoveBlockRight() error {
	return e.moveBlock(1)
}

// MoveBlockLeft shifts the selected content one column left.
func (e *Editor) MoveBlockLeft() error {
	return e.moveBlock(-1)
}

// moveBlock shifts selected content by dx (±1) and moves the selection
// with it.
//
// Overwrite mode keeps every line's width: a block rotates the glyph just
// past its leading edge to the trailing edge as a space, and a line
// selection pushes a space at one end and drops the glyph at the other.
// Insert mode adds or removes one space at the left edge of the block.
func (e *Editor) moveBlock(dx int) error {
	if e.ReadOnly() {
		return nil
	}
	top, bottom, ok := e.selectedRows()
	if !ok {
		return ErrNoSelection
	}
	left := 0
	bs, isBlock := e.sel.(cursor.BlockSelection)
	if isBlock {
		left = bs.Left
	}
	if dx < 0 && isBlock && left == 0 {
		return nil
	}
	e.saveState()

	for row := top; row <= bottom; row++ {
		line := e.buf.Line(row)
		switch {
		case e.overwrite && isBlock:
			line = e.rotateBlock(line, bs, dx)
		case e.overwrite:
			line = e.rotateLine(line, dx)
		default:
			line = e.shiftAt(line, left, dx)
		}
		_ = e.buf.SetLine(row, line)
	}

	e.sel = e.sel.Shift(dx)
	e.modified = true
	return nil
}

// rotateBlock moves the rectangle's content one column, consuming the
// glyph beyond the leading edge and leaving a space at the trailing edge.
func (e *Editor) rotateBlock(line string, bs cursor.BlockSelection, dx int) string {
	m := e.metrics
	if m.Width(line) < bs.Left {
		return line
	}
	if dx > 0 {
		line = m.PadTo(line, bs.Right+2)
		line = m.ReplaceColumns(line, bs.Right+1, bs.Right+2, "")
		return m.ReplaceColumns(line, bs.Left, bs.Left, " ")
	}
	line = m.PadTo(line, bs.Right+1)
	line = m.ReplaceColumns(line, bs.Left-1, bs.Left, "")
	return m.ReplaceColumns(line, bs.Right, bs.Right, " ")
}

// rotateLine pushes a space at one end of line and drops the glyph at the
// other.
func (e *Editor) rotateLine(line string, dx int) string {
	glyphs := e.metrics.Glyphs(line)
	if len(glyphs) == 0 {
		return line
	}
	if dx > 0 {
		last := glyphs[len(glyphs)-1]
		return " " + line[:last.Offset]
	}
	return line[glyphs[0].End():] + " "
}

// shiftAt inserts a space at col, or removes the space just before it.
func (e *Editor) shiftAt(line string, col, dx int) string {
	m := e.metrics
	if dx > 0 {
		if m.Width(line) < col {
			return line
		}
		return m.ReplaceColumns(line, col, col, " ")
	}
	target := col - 1
	if target < 0 {
		target = 0
	}
	g, ok := m.GlyphAt(line, target)
	if !ok || g.Col != target || g.Text != " " {
		return line
	}
	return line[:g.Offset] + line[g.End():]
}
