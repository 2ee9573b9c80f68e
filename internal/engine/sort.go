package engine

import (
	"github.com/dshills/vedit/internal/engine/cursor"
	"github.com/dshills/vedit/internal/engine/sorting"
)

// ============================================================================
// Sorting
// ============================================================================

// SortAll sorts every line of the buffer by keys. With no keys whole lines
// are compared.
func (e *Editor) SortAll(keys []SortKey) {
	if e.ReadOnly() {
		return
	}
	e.saveState()
	e.buf.Replace(sorting.New(e.metrics, keys).Lines(e.buf.Lines()))
	e.modified = true
	e.refreshMatches()
}

// SortSelection sorts the selected rows by keys. A line selection reorders
// whole lines; a block selection reorders only the rectangle's columns in
// each row. Key columns are absolute in both cases.
func (e *Editor) SortSelection(keys []SortKey) error {
	if e.ReadOnly() {
		return nil
	}
	top, bottom, ok := e.selectedRows()
	if !ok {
		return ErrNoSelection
	}
	e.saveState()

	lines := e.buf.Lines()
	rows := lines[top : bottom+1]
	s := sorting.New(e.metrics, keys)

	var sorted []string
	if bs, isBlock := e.sel.(cursor.BlockSelection); isBlock {
		from, to := bs.Cols()
		sorted = s.Block(rows, from, to)
	} else {
		sorted = s.Lines(rows)
	}
	copy(rows, sorted)

	e.buf.Replace(lines)
	e.modified = true
	e.refreshMatches()
	return nil
}
