package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := NewStyledCell('X', DefaultStyle().WithForeground(ColorRed))
	b.SetCell(10, 5, cell)

	got := b.GetCell(10, 5)
	if !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	empty := b.GetCell(-1, 0)
	if !empty.Equals(EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendRow(t *testing.T) {
	b := NewNullBackend(10, 2)
	b.Init()

	n := DrawString(b, 1, 0, "a世b", DefaultStyle(), 10)
	if n != 4 {
		t.Errorf("DrawString used %d cells, want 4", n)
	}
	if got := b.Row(0); got != " a世b" {
		t.Errorf("Row(0) = %q", got)
	}
	if got := b.Row(1); got != "" {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestDrawStringClips(t *testing.T) {
	b := NewNullBackend(10, 1)
	b.Init()

	if n := DrawString(b, 0, 0, "ab世", DefaultStyle(), 3); n != 2 {
		t.Errorf("DrawString used %d cells, want 2", n)
	}
	if got := b.Row(0); got != "ab" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestFillRow(t *testing.T) {
	b := NewNullBackend(5, 1)
	b.Init()

	style := DefaultStyle().With(AttrReverse)
	FillRow(b, 1, 0, 3, style)

	for x := 0; x < 5; x++ {
		rev := b.GetCell(x, 0).Style.Attributes.Has(AttrReverse)
		if want := x >= 1 && x <= 3; rev != want {
			t.Errorf("cell %d reverse = %v, want %v", x, rev, want)
		}
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(4, 1)
	b.Init()

	DrawString(b, 0, 0, "abcd", DefaultStyle(), 4)
	b.Clear()
	if got := b.Row(0); got != "" {
		t.Errorf("Row after Clear = %q", got)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.ShowCursor(10, 5)
	x, y, visible := b.CursorPosition()
	if x != 10 || y != 5 || !visible {
		t.Errorf("expected cursor at (10, 5) visible, got (%d, %d) visible=%v", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible = b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}

	b.SetCursorStyle(CursorBar)
	if b.CursorStyleValue() != CursorBar {
		t.Error("cursor style should be bar")
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.PostEvent(RuneEvent('a'))
	b.PostEvent(KeyEvent(KeyEnter))

	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Key != KeyRune || ev.Rune != 'a' {
		t.Errorf("first event = %+v", ev)
	}
	ev = b.PollEvent()
	if ev.Type != EventKey || ev.Key != KeyEnter {
		t.Errorf("second event = %+v", ev)
	}

	b.Shutdown()
	if ev := b.PollEvent(); ev.Type != EventNone {
		t.Errorf("event after Shutdown = %+v", ev)
	}
	b.Shutdown()
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.Resize(100, 30)

	w, h := b.Size()
	if w != 100 || h != 30 {
		t.Errorf("expected size (100, 30), got (%d, %d)", w, h)
	}
	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 30 {
		t.Errorf("resize event = %+v", ev)
	}
}

func TestModMaskHas(t *testing.T) {
	m := ModCtrl | ModShift

	if !m.Has(ModCtrl) {
		t.Error("should have ModCtrl")
	}
	if !m.Has(ModShift) {
		t.Error("should have ModShift")
	}
	if m.Has(ModAlt) {
		t.Error("should not have ModAlt")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'世', 2},
		{'\t', 0},
		{0x7F, 0},
	}
	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestTerminalSimulation(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := newTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer term.Shutdown()
	screen.SetSize(20, 5)

	style := DefaultStyle().WithForeground(ColorGreen).With(AttrBold)
	term.SetCell(2, 1, NewStyledCell('Q', style))
	term.Show()

	got := term.GetCell(2, 1)
	if got.Rune != 'Q' {
		t.Errorf("Rune = %q, want Q", got.Rune)
	}
	if got.Style != style {
		t.Errorf("Style = %+v, want %+v", got.Style, style)
	}

	term.PostEvent(KeyEvent(KeyF7))
	ev := nextKey(term)
	if ev.Type != EventKey || ev.Key != KeyF7 {
		t.Errorf("event = %+v, want F7", ev)
	}

	term.PostEvent(RuneEvent('x'))
	ev = nextKey(term)
	if ev.Key != KeyRune || ev.Rune != 'x' {
		t.Errorf("event = %+v, want rune x", ev)
	}
}

// nextKey skips the resize events a screen reports on start.
func nextKey(b Backend) Event {
	for {
		ev := b.PollEvent()
		if ev.Type != EventResize {
			return ev
		}
	}
}

func TestKeyConversionRoundTrip(t *testing.T) {
	for tk, k := range tcellKeys {
		back := convertToTcellKey(k)
		if convertKey(back) != k {
			t.Errorf("key %v -> %v -> %v", tk, k, back)
		}
	}
	if convertKey(tcell.KeyF12) != KeyNone {
		t.Error("unbound key should map to KeyNone")
	}
}
