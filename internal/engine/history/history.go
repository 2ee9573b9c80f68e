package history

import (
	"errors"

	"github.com/dshills/vedit/internal/engine/buffer"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries is used when New is given a non-positive limit.
const DefaultMaxEntries = 1000

// History is a linear sequence of buffer snapshots with a position pointer.
//
// Invariants: len(entries) >= 1 and 0 <= index < len(entries).
type History struct {
	entries    []buffer.Snapshot
	index      int
	maxEntries int
}

// New creates a history whose only entry is initial.
func New(initial buffer.Snapshot, maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if maxEntries < 2 {
		maxEntries = 2
	}
	return &History{
		entries:    []buffer.Snapshot{initial},
		maxEntries: maxEntries,
	}
}

// Save records current, the state about to be mutated.
// Entries past the pointer are discarded first.
func (h *History) Save(current buffer.Snapshot) {
	h.entries = h.entries[:h.index+1]
	h.entries[h.index] = current
	// The new tip is a placeholder for the post-edit state; Undo replaces it
	// with the live buffer before stepping back.
	h.entries = append(h.entries, current)
	h.index++

	if excess := len(h.entries) - h.maxEntries; excess > 0 {
		h.entries = append([]buffer.Snapshot(nil), h.entries[excess:]...)
		h.index -= excess
	}
}

// Undo steps back one entry. live is the buffer being left and is kept so a
// later Redo can return to it.
func (h *History) Undo(live buffer.Snapshot) (buffer.Snapshot, error) {
	if h.index == 0 {
		return buffer.Snapshot{}, ErrNothingToUndo
	}
	h.entries[h.index] = live
	h.index--
	return h.entries[h.index], nil
}

// Redo steps forward one entry.
func (h *History) Redo(live buffer.Snapshot) (buffer.Snapshot, error) {
	if h.index >= len(h.entries)-1 {
		return buffer.Snapshot{}, ErrNothingToRedo
	}
	h.entries[h.index] = live
	h.index++
	return h.entries[h.index], nil
}

// CanUndo returns true if there are entries before the pointer.
func (h *History) CanUndo() bool {
	return h.index > 0
}

// CanRedo returns true if there are entries after the pointer.
func (h *History) CanRedo() bool {
	return h.index < len(h.entries)-1
}

// Position returns the pointer and the number of entries.
func (h *History) Position() (index, total int) {
	return h.index, len(h.entries)
}

// Reset discards all entries and starts over from initial.
func (h *History) Reset(initial buffer.Snapshot) {
	h.entries = []buffer.Snapshot{initial}
	h.index = 0
}

// MaxEntries returns the entry limit.
func (h *History) MaxEntries() int {
	return h.maxEntries
}
