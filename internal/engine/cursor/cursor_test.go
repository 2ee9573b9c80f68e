package cursor

import "testing"

func widths(w ...int) func(int) int {
	return func(row int) int {
		if row < 0 || row >= len(w) {
			return 0
		}
		return w[row]
	}
}

func TestCursorMove(t *testing.T) {
	lines := widths(5, 2, 10)
	tests := []struct {
		name    string
		start   Cursor
		dx, dy  int
		virtual bool
		want    Cursor
	}{
		{"right", Cursor{0, 0}, 1, 0, false, Cursor{0, 1}},
		{"clamp right", Cursor{0, 5}, 1, 0, false, Cursor{0, 5}},
		{"virtual right", Cursor{0, 5}, 3, 0, true, Cursor{0, 8}},
		{"left floor", Cursor{0, 0}, -1, 0, true, Cursor{0, 0}},
		{"down onto short line", Cursor{0, 4}, 0, 1, false, Cursor{1, 2}},
		{"down onto short line virtual", Cursor{0, 4}, 0, 1, true, Cursor{1, 4}},
		{"row clamp low", Cursor{0, 0}, 0, -3, false, Cursor{0, 0}},
		{"row clamp high", Cursor{2, 0}, 0, 5, false, Cursor{2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Move(tt.dx, tt.dy, 2, tt.virtual, lines)
			if got != tt.want {
				t.Errorf("Move = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCursorClamp(t *testing.T) {
	c := Cursor{Row: 9, Col: 40}
	got := c.Clamp(1, widths(3, 6))
	if got != (Cursor{Row: 1, Col: 6}) {
		t.Errorf("Clamp = %+v", got)
	}
}

func TestInVirtualSpace(t *testing.T) {
	if (Cursor{Col: 3}).InVirtualSpace(3) {
		t.Error("column at width is not virtual")
	}
	if !(Cursor{Col: 4}).InVirtualSpace(3) {
		t.Error("column past width is virtual")
	}
}

func TestLineSelectionExtend(t *testing.T) {
	s := NewLineSelection(5, 80)
	s = s.Extend(2, 80)
	if s.Top != 2 || s.Bottom != 5 {
		t.Errorf("extend up = %v", s)
	}
	s = s.Extend(7, 100)
	if s.Top != 2 || s.Bottom != 7 || s.Width != 100 {
		t.Errorf("extend down = %v", s)
	}
	if !s.Contains(3, 99) || s.Contains(3, 100) || s.Contains(8, 0) {
		t.Error("Contains wrong")
	}
}

func TestBlockSelectionExtend(t *testing.T) {
	s := NewBlockSelection(Point{Row: 3, Col: 4})
	s = s.Extend(Point{Row: 1, Col: 8})
	want := BlockSelection{Top: 1, Bottom: 3, Left: 4, Right: 8}
	if s != want {
		t.Errorf("Extend = %v, want %v", s, want)
	}
	if s.Width() != 5 {
		t.Errorf("Width = %d", s.Width())
	}
	from, to := s.Cols()
	if from != 4 || to != 9 {
		t.Errorf("Cols = %d,%d", from, to)
	}
}

func TestBlockSelectionShift(t *testing.T) {
	s := BlockSelection{Top: 0, Bottom: 1, Left: 0, Right: 2}
	if got := s.Shift(-1); got != Selection(s) {
		t.Errorf("shift past zero should be ignored, got %v", got)
	}
	got := s.Shift(1).(BlockSelection)
	if got.Left != 1 || got.Right != 3 {
		t.Errorf("Shift(1) = %v", got)
	}
}

func TestModeOf(t *testing.T) {
	if ModeOf(nil) != ModeNone {
		t.Error("nil should be ModeNone")
	}
	if ModeOf(NewLineSelection(0, 1)) != ModeLine {
		t.Error("line mode")
	}
	if ModeOf(NewBlockSelection(Point{})) != ModeBlock {
		t.Error("block mode")
	}
	if ModeBlock.String() != "block" {
		t.Error("String")
	}
}
