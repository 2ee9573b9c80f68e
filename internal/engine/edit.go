package engine

// ============================================================================
// Write Operations
// ============================================================================

// saveState records the pre-edit buffer. Every mutation calls it once,
// after its no-op checks and before touching the buffer.
func (e *Editor) saveState() {
	e.hist.Save(e.buf.Snapshot())
}

// TypeChar types r at the cursor. In overwrite mode the glyph under the
// cursor is replaced; at the end of the line r is appended. Virtual space
// before the cursor is materialized as spaces first.
func (e *Editor) TypeChar(r rune) {
	if e.ReadOnly() {
		return
	}
	e.saveState()
	e.put(r)
	e.modified = true
	e.scroll()
}

// InsertTab types spaces up to the next tab stop.
func (e *Editor) InsertTab() {
	if e.ReadOnly() {
		return
	}
	e.saveState()
	n := e.metrics.TabStop(e.cur.Col) - e.cur.Col
	for range n {
		e.put(' ')
	}
	e.modified = true
	e.scroll()
}

// put writes r at the cursor without recording history.
func (e *Editor) put(r rune) {
	row := e.cur.Row
	line := e.buf.Line(row)
	if e.virtual && e.cur.Col > e.metrics.Width(line) {
		line = e.metrics.PadTo(line, e.cur.Col)
	}

	off := e.metrics.ByteOffset(line, e.cur.Col)
	col := e.metrics.ColumnAt(line, off)
	ch := string(r)

	if g, ok := e.metrics.GlyphAt(line, e.cur.Col); ok && e.overwrite {
		line = line[:off] + ch + line[g.End():]
	} else {
		line = line[:off] + ch + line[off:]
	}

	_ = e.buf.SetLine(row, line)
	e.cur.Col = col + e.metrics.RuneWidth(r, col)
}

// DeleteChar removes the glyph under the cursor, or joins the next line
// when the cursor is at the end of the line. It does nothing in virtual
// space.
func (e *Editor) DeleteChar() {
	if e.ReadOnly() {
		return
	}
	row := e.cur.Row
	line := e.buf.Line(row)
	if e.cur.InVirtualSpace(e.metrics.Width(line)) {
		return
	}

	if g, ok := e.metrics.GlyphAt(line, e.cur.Col); ok {
		e.saveState()
		_ = e.buf.SetLine(row, line[:g.Offset]+line[g.End():])
	} else if row < e.buf.LastRow() {
		e.saveState()
		_ = e.buf.JoinNext(row)
	} else {
		return
	}
	e.modified = true
}

// Backspace removes the glyph before the cursor. At column 0 the line is
// joined onto the previous one. It does nothing in virtual space.
func (e *Editor) Backspace() {
	if e.ReadOnly() {
		return
	}
	row := e.cur.Row
	line := e.buf.Line(row)
	if e.cur.InVirtualSpace(e.metrics.Width(line)) {
		return
	}

	switch {
	case e.cur.Col > 0:
		g, ok := e.metrics.GlyphBefore(line, e.cur.Col)
		if !ok {
			return
		}
		e.saveState()
		_ = e.buf.SetLine(row, line[:g.Offset]+line[g.End():])
		e.cur.Col = g.Col
	case row > 0:
		prevWidth := e.buf.LineWidth(row - 1)
		e.saveState()
		_ = e.buf.JoinNext(row - 1)
		e.cur.Row = row - 1
		e.cur.Col = prevWidth
	default:
		return
	}
	e.modified = true
	e.scroll()
}

// InsertNewline splits the line at the cursor and moves to the start of
// the new line.
func (e *Editor) InsertNewline() {
	if e.ReadOnly() {
		return
	}
	e.saveState()
	row := e.cur.Row
	off := e.metrics.ByteOffset(e.buf.Line(row), e.cur.Col)
	_ = e.buf.SplitLine(row, off)
	e.cur.Row = row + 1
	e.cur.Col = 0
	e.modified = true
	e.scroll()
}

// ============================================================================
// Undo/Redo
// ============================================================================

// Undo restores the state before the last edit.
func (e *Editor) Undo() error {
	if e.ReadOnly() {
		return nil
	}
	snap, err := e.hist.Undo(e.buf.Snapshot())
	if err != nil {
		return err
	}
	e.buf.Restore(snap)
	e.afterRestore()
	return nil
}

// Redo reapplies the last undone edit.
func (e *Editor) Redo() error {
	if e.ReadOnly() {
		return nil
	}
	snap, err := e.hist.Redo(e.buf.Snapshot())
	if err != nil {
		return err
	}
	e.buf.Restore(snap)
	e.afterRestore()
	return nil
}

func (e *Editor) afterRestore() {
	e.clampCursor()
	e.modified = !e.buf.Equal(e.saved)
	e.refreshMatches()
}

// CanUndo reports whether Undo would succeed.
func (e *Editor) CanUndo() bool {
	return e.hist.CanUndo()
}

// CanRedo reports whether Redo would succeed.
func (e *Editor) CanRedo() bool {
	return e.hist.CanRedo()
}

// UndoPosition returns the history pointer and entry count.
func (e *Editor) UndoPosition() (index, total int) {
	return e.hist.Position()
}

// MarkSaved records the current buffer as the saved baseline and clears
// the modified flag. History is not touched.
func (e *Editor) MarkSaved() {
	e.saved = e.buf.Snapshot()
	e.modified = false
}
