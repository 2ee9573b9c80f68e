package engine

import (
	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/engine/cursor"
	"github.com/dshills/vedit/internal/engine/diff"
	"github.com/dshills/vedit/internal/engine/history"
	"github.com/dshills/vedit/internal/engine/search"
	"github.com/dshills/vedit/internal/engine/sorting"
	"github.com/dshills/vedit/internal/engine/text"
)

// Re-export commonly used types for convenience.
type (
	// Point is a row and display column.
	Point = buffer.Point

	// Cursor is the insertion point.
	Cursor = cursor.Cursor

	// Selection is nil, a LineSelection or a BlockSelection.
	Selection = cursor.Selection

	// LineSelection selects whole rows.
	LineSelection = cursor.LineSelection

	// BlockSelection selects a rectangle of cells.
	BlockSelection = cursor.BlockSelection

	// Match is a search hit in display columns.
	Match = search.Match

	// Scope selects the part of the buffer a search covers.
	Scope = search.Scope

	// SortKey is one column range of a multi-key sort.
	SortKey = sorting.Key

	// Hunk is one reviewable change of a diff session.
	Hunk = diff.Hunk

	// DiffStats summarizes a diff session.
	DiffStats = diff.Stats
)

// Re-export constants.
const (
	ScopeAll   = search.ScopeAll
	ScopeLine  = search.ScopeLine
	ScopeBlock = search.ScopeBlock
)

// Editor is one editing session: a buffer with its cursor, selection,
// history, search state and optional diff review.
//
// Editor is not safe for concurrent use. It is owned by the control loop;
// background work hands results back through PollProposal.
type Editor struct {
	// Core components
	buf     *buffer.Buffer
	metrics text.Metrics
	cur     cursor.Cursor
	sel     cursor.Selection
	hist    *history.History
	saved   buffer.Snapshot
	search  *search.State
	diff    *diff.Session

	// Viewport
	scrollX    int
	scrollY    int
	viewWidth  int
	viewHeight int

	// Configuration
	tabWidth       int
	maxUndoEntries int
	virtual        bool
	overwrite      bool
	readOnly       bool

	// Host loop flags
	modified bool
	quit     bool
}

// New creates an Editor holding content. Line endings must already be
// normalized to "\n".
func New(content string, opts ...Option) *Editor {
	e := &Editor{
		tabWidth:       DefaultTabWidth,
		maxUndoEntries: DefaultMaxUndoEntries,
		viewWidth:      DefaultViewWidth,
		viewHeight:     DefaultViewHeight,
		virtual:        true,
		overwrite:      true,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.metrics = text.New(e.tabWidth)
	e.buf = buffer.New(content, buffer.WithMetrics(e.metrics))
	e.saved = e.buf.Snapshot()
	e.hist = history.New(e.saved, e.maxUndoEntries)

	return e
}

// ============================================================================
// Read Operations
// ============================================================================

// Text returns the buffer joined with "\n".
func (e *Editor) Text() string {
	return e.buf.Text()
}

// Lines returns a copy of the buffer lines.
func (e *Editor) Lines() []string {
	return e.buf.Lines()
}

// LineCount returns the number of lines; always at least 1.
func (e *Editor) LineCount() int {
	return e.buf.LineCount()
}

// Line returns the text of row, or "" when out of range.
func (e *Editor) Line(row int) string {
	return e.buf.Line(row)
}

// Metrics returns the column arithmetic used by the editor.
func (e *Editor) Metrics() text.Metrics {
	return e.metrics
}

// Cursor returns the cursor position.
func (e *Editor) Cursor() Cursor {
	return e.cur
}

// Selection returns the active selection, or nil.
func (e *Editor) Selection() Selection {
	return e.sel
}

// Modified reports whether the buffer differs from the last save.
func (e *Editor) Modified() bool {
	return e.modified
}

// ReadOnly reports whether mutations are currently ignored, either because
// the editor was created read-only or because a diff review is active.
func (e *Editor) ReadOnly() bool {
	return e.readOnly || e.diff != nil
}

// SetReadOnly changes the base read-only flag.
func (e *Editor) SetReadOnly(ro bool) {
	e.readOnly = ro
}

// VirtualCursor reports whether the cursor may pass line ends.
func (e *Editor) VirtualCursor() bool {
	return e.virtual
}

// Overwrite reports whether typing replaces the glyph under the cursor.
func (e *Editor) Overwrite() bool {
	return e.overwrite
}

// ToggleOverwrite switches between overwrite and insert typing.
func (e *Editor) ToggleOverwrite() {
	e.overwrite = !e.overwrite
}

// Quit reports whether the host loop should exit.
func (e *Editor) Quit() bool {
	return e.quit
}

// RequestQuit asks the host loop to exit. Confirmation for unsaved
// changes is the caller's responsibility.
func (e *Editor) RequestQuit() {
	e.quit = true
}

// ============================================================================
// Cursor Movement and Viewport
// ============================================================================

// MoveCursor moves the cursor by dx columns and dy rows.
func (e *Editor) MoveCursor(dx, dy int) {
	e.cur = e.cur.Move(dx, dy, e.buf.LastRow(), e.virtual, e.buf.LineWidth)
	e.scroll()
}

// SetCursor places the cursor at row and col, clamped to the buffer.
func (e *Editor) SetCursor(row, col int) {
	e.cur = cursor.New(e.buf.ClampRow(row), col)
	if !e.virtual {
		e.cur = e.cur.Clamp(e.buf.LastRow(), e.buf.LineWidth)
	}
	e.scroll()
}

// Home moves the cursor to column 0.
func (e *Editor) Home() {
	e.cur.Col = 0
	e.scroll()
}

// End moves the cursor just past the last glyph of the line.
func (e *Editor) End() {
	e.cur.Col = e.buf.LineWidth(e.cur.Row)
	e.scroll()
}

// PageUp moves the cursor up by one page, keeping a line of context.
func (e *Editor) PageUp() {
	e.MoveCursor(0, -e.pageSize())
}

// PageDown moves the cursor down by one page, keeping a line of context.
func (e *Editor) PageDown() {
	e.MoveCursor(0, e.pageSize())
}

func (e *Editor) pageSize() int {
	return max(e.viewHeight-1, 1)
}

// GotoLine moves the cursor to column 0 of the 1-based line n.
func (e *Editor) GotoLine(n int) error {
	if n < 1 || n > e.buf.LineCount() {
		return ErrLineOutOfRange
	}
	e.cur = cursor.New(n-1, 0)
	e.scroll()
	return nil
}

// SetViewport sets the visible text area and rescrolls to keep the cursor
// in view. Non-positive sizes are ignored.
func (e *Editor) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.viewWidth, e.viewHeight = width, height
	e.scroll()
}

// Viewport returns the visible text area size.
func (e *Editor) Viewport() (width, height int) {
	return e.viewWidth, e.viewHeight
}

// Scroll returns the first visible column and row.
func (e *Editor) Scroll() (x, y int) {
	return e.scrollX, e.scrollY
}

// scroll adjusts the offsets so the cursor cell is visible.
func (e *Editor) scroll() {
	if e.cur.Row < e.scrollY {
		e.scrollY = e.cur.Row
	}
	if e.cur.Row >= e.scrollY+e.viewHeight {
		e.scrollY = e.cur.Row - e.viewHeight + 1
	}
	if e.cur.Col < e.scrollX {
		e.scrollX = e.cur.Col
	}
	if e.cur.Col >= e.scrollX+e.viewWidth {
		e.scrollX = e.cur.Col - e.viewWidth + 1
	}
}

// clampCursor pulls the cursor back inside the buffer after the line
// sequence was replaced.
func (e *Editor) clampCursor() {
	e.cur = e.cur.Clamp(e.buf.LastRow(), e.buf.LineWidth)
	e.scroll()
}
