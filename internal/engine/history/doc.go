// Package history provides linear undo/redo for the editor engine.
//
// The history is an ordered list of buffer snapshots with a pointer to the
// entry that represents the live buffer. There is no redo tree: recording
// a new state after an undo discards every entry past the pointer.
//
// # Recording
//
// Save is called with the pre-edit buffer immediately before every
// mutation:
//
//	h := history.New(buf.Snapshot(), 1000)
//
//	h.Save(buf.Snapshot()) // before the edit
//	// ... mutate buf ...
//
// # Undo and Redo
//
// Undo and Redo take the live buffer so the state being left can be
// revisited later, and return the snapshot to restore:
//
//	snap, err := h.Undo(buf.Snapshot())
//	if err == nil {
//	    buf.Restore(snap)
//	}
//
// Undo followed by Redo always returns to the buffer that was live before
// the Undo.
//
// # Bounded Size
//
// The history keeps at most maxEntries snapshots; the oldest are dropped
// when the limit is exceeded.
package history
