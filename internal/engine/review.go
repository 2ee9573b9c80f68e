package engine

import (
	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/engine/cursor"
	"github.com/dshills/vedit/internal/engine/diff"
)

// ============================================================================
// Diff Review
// ============================================================================

// StartDiff opens a review of proposed against the current buffer. The
// buffer shows the reconstruction of accepted hunks and is read-only until
// ApplyDiffChanges or CancelDiff.
func (e *Editor) StartDiff(proposed []string) error {
	if e.diff != nil {
		return ErrDiffActive
	}
	e.diff = diff.NewSession(e.buf.Lines(), proposed)
	e.sel = nil
	e.search = nil
	e.showDiff()
	return nil
}

// showDiff rebuilds the displayed buffer and puts the cursor on the
// current hunk.
func (e *Editor) showDiff() {
	e.buf.Replace(e.diff.Reconstruct())
	e.cur = cursor.New(e.buf.ClampRow(e.diff.DisplayRow()), 0)
	e.scroll()
}

// DiffActive reports whether a review is running.
func (e *Editor) DiffActive() bool {
	return e.diff != nil
}

// DiffStats returns counts for the running review.
func (e *Editor) DiffStats() (DiffStats, bool) {
	if e.diff == nil {
		return DiffStats{}, false
	}
	return e.diff.Stats(), true
}

// CurrentHunk returns the hunk under review and the rows it occupies in
// the displayed buffer.
func (e *Editor) CurrentHunk() (h Hunk, top, rows int, ok bool) {
	if e.diff == nil {
		return Hunk{}, 0, 0, false
	}
	h, ok = e.diff.Current()
	if !ok {
		return Hunk{}, 0, 0, false
	}
	rows = h.OldLines
	if h.Accepted {
		rows = h.NewLines
	}
	return h, e.diff.DisplayRow(), rows, true
}

// AcceptCurrentHunk marks the current hunk accepted.
func (e *Editor) AcceptCurrentHunk() error {
	if e.diff == nil {
		return ErrNoDiffSession
	}
	e.diff.AcceptCurrent()
	e.showDiff()
	return nil
}

// RejectCurrentHunk marks the current hunk rejected.
func (e *Editor) RejectCurrentHunk() error {
	if e.diff == nil {
		return ErrNoDiffSession
	}
	e.diff.RejectCurrent()
	e.showDiff()
	return nil
}

// NextHunk moves to the next hunk. It reports false at the last hunk.
func (e *Editor) NextHunk() (bool, error) {
	if e.diff == nil {
		return false, ErrNoDiffSession
	}
	moved := e.diff.Next()
	e.showDiff()
	return moved, nil
}

// PrevHunk moves to the previous hunk. It reports false at the first hunk.
func (e *Editor) PrevHunk() (bool, error) {
	if e.diff == nil {
		return false, ErrNoDiffSession
	}
	moved := e.diff.Prev()
	e.showDiff()
	return moved, nil
}

// AcceptAllHunks accepts every hunk.
func (e *Editor) AcceptAllHunks() error {
	if e.diff == nil {
		return ErrNoDiffSession
	}
	e.diff.AcceptAll()
	e.showDiff()
	return nil
}

// RejectAllHunks rejects every hunk.
func (e *Editor) RejectAllHunks() error {
	if e.diff == nil {
		return ErrNoDiffSession
	}
	e.diff.RejectAll()
	e.showDiff()
	return nil
}

// AllHunksAccepted reports whether every hunk of the review is accepted.
func (e *Editor) AllHunksAccepted() bool {
	return e.diff != nil && e.diff.AllAccepted()
}

// ApplyDiffChanges commits the accepted hunks as the live buffer and ends
// the review. The pre-review buffer becomes an undo step.
func (e *Editor) ApplyDiffChanges() error {
	if e.diff == nil {
		return ErrNoDiffSession
	}
	result := e.diff.Reconstruct()
	e.hist.Save(buffer.NewSnapshot(e.diff.Original()))
	e.buf.Replace(result)
	e.diff = nil
	e.modified = true
	e.clampCursor()
	return nil
}

// CancelDiff restores the pre-review buffer and ends the review.
func (e *Editor) CancelDiff() error {
	if e.diff == nil {
		return ErrNoDiffSession
	}
	e.buf.Replace(e.diff.Original())
	e.diff = nil
	e.clampCursor()
	return nil
}
