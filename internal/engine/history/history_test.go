package history

import (
	"errors"
	"testing"

	"github.com/dshills/vedit/internal/engine/buffer"
)

func snap(s string) buffer.Snapshot {
	return buffer.NewSnapshot(buffer.Split(s))
}

// edit simulates an editor mutation: save the pre-edit state, then change.
func edit(h *History, live *buffer.Snapshot, next string) {
	h.Save(*live)
	*live = snap(next)
}

func TestNewHistory(t *testing.T) {
	h := New(snap("a"), 0)
	if h.CanUndo() || h.CanRedo() {
		t.Error("fresh history should have nothing to undo or redo")
	}
	if idx, total := h.Position(); idx != 0 || total != 1 {
		t.Errorf("Position = %d/%d", idx, total)
	}
	if h.MaxEntries() != DefaultMaxEntries {
		t.Errorf("MaxEntries = %d", h.MaxEntries())
	}
}

func TestUndoRedoEmpty(t *testing.T) {
	h := New(snap("a"), 10)
	if _, err := h.Undo(snap("a")); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
	if _, err := h.Redo(snap("a")); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestUndoRedoRestoresStates(t *testing.T) {
	live := snap("v0")
	h := New(live, 10)
	edit(h, &live, "v1")
	edit(h, &live, "v2")

	got, err := h.Undo(live)
	if err != nil || got.Text() != "v1" {
		t.Fatalf("first undo = %q, %v", got.Text(), err)
	}
	live = got
	got, err = h.Undo(live)
	if err != nil || got.Text() != "v0" {
		t.Fatalf("second undo = %q, %v", got.Text(), err)
	}
	live = got
	got, _ = h.Redo(live)
	if got.Text() != "v1" {
		t.Fatalf("redo = %q", got.Text())
	}
	live = got
	got, _ = h.Redo(live)
	if got.Text() != "v2" {
		t.Fatalf("second redo = %q", got.Text())
	}
	if h.CanRedo() {
		t.Error("should be at tip")
	}
}

func TestSaveAfterUndoTruncates(t *testing.T) {
	live := snap("v0")
	h := New(live, 10)
	edit(h, &live, "v1")
	edit(h, &live, "v2")

	live, _ = h.Undo(live) // v1
	edit(h, &live, "v3")

	if h.CanRedo() {
		t.Error("redo entries should be discarded after a new save")
	}
	got, _ := h.Undo(live)
	if got.Text() != "v1" {
		t.Errorf("undo after branch = %q, want v1", got.Text())
	}
	got, _ = h.Redo(got)
	if got.Text() != "v3" {
		t.Errorf("redo after branch = %q, want v3", got.Text())
	}
}

func TestMaxEntriesDropsOldest(t *testing.T) {
	live := snap("v0")
	h := New(live, 3)
	for _, s := range []string{"v1", "v2", "v3", "v4"} {
		edit(h, &live, s)
	}
	if _, total := h.Position(); total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	var texts []string
	for h.CanUndo() {
		live, _ = h.Undo(live)
		texts = append(texts, live.Text())
	}
	if len(texts) != 2 || texts[0] != "v3" || texts[1] != "v2" {
		t.Errorf("undo chain = %v", texts)
	}
}

func TestReset(t *testing.T) {
	live := snap("v0")
	h := New(live, 10)
	edit(h, &live, "v1")
	h.Reset(snap("fresh"))
	if h.CanUndo() {
		t.Error("reset history should not undo")
	}
}
