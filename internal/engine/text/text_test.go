package text

import "testing"

func TestWidth(t *testing.T) {
	m := New(4)
	tests := []struct {
		name string
		line string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"wide", "漢字", 4},
		{"mixed", "a漢b", 4},
		{"combining", "e\u0301x", 2},
		{"tab at start", "\tx", 5},
		{"tab mid stop", "ab\tx", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Width(tt.line); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.line, got, tt.want)
			}
		})
	}
}

func TestByteOffset(t *testing.T) {
	m := New(4)
	tests := []struct {
		name string
		line string
		col  int
		want int
	}{
		{"start", "abc", 0, 0},
		{"middle", "abc", 2, 2},
		{"end", "abc", 3, 3},
		{"past end", "abc", 10, 3},
		{"after wide", "a漢b", 3, 4},
		{"inside wide", "a漢b", 2, 4},
		{"combining", "e\u0301x", 1, 3},
		{"negative", "abc", -2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ByteOffset(tt.line, tt.col); got != tt.want {
				t.Errorf("ByteOffset(%q, %d) = %d, want %d", tt.line, tt.col, got, tt.want)
			}
		})
	}
}

func TestColumnAt(t *testing.T) {
	m := New(4)
	if got := m.ColumnAt("a漢b", 4); got != 3 {
		t.Errorf("ColumnAt = %d, want 3", got)
	}
	if got := m.ColumnAt("a漢b", 2); got != 1 {
		t.Errorf("ColumnAt inside glyph = %d, want 1", got)
	}
	if got := m.ColumnAt("abc", 99); got != 3 {
		t.Errorf("ColumnAt past end = %d, want 3", got)
	}
}

func TestGlyphAtAndBefore(t *testing.T) {
	m := New(4)
	g, ok := m.GlyphAt("a漢b", 1)
	if !ok || g.Text != "漢" || g.Width != 2 {
		t.Errorf("GlyphAt = %+v, %v", g, ok)
	}
	if _, ok := m.GlyphAt("ab", 2); ok {
		t.Error("GlyphAt at end should not find a glyph")
	}
	g, ok = m.GlyphBefore("a漢b", 3)
	if !ok || g.Text != "漢" {
		t.Errorf("GlyphBefore = %+v, %v", g, ok)
	}
	if _, ok := m.GlyphBefore("ab", 0); ok {
		t.Error("GlyphBefore at column 0 should not find a glyph")
	}
}

func TestExtract(t *testing.T) {
	m := New(4)
	tests := []struct {
		name     string
		line     string
		from, to int
		want     string
	}{
		{"inside", "abcdef", 1, 4, "bcd"},
		{"short line padded", "ab", 1, 4, "b  "},
		{"virtual", "ab", 5, 8, "   "},
		{"empty range", "abc", 2, 2, ""},
		{"wide cut by left edge", "日本語 ab", 1, 9, " 本語 ab"},
		{"wide cut by right edge", "ab日本", 0, 3, "ab "},
		{"tab expands", "a\tb", 0, 6, "a   b "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Extract(tt.line, tt.from, tt.to); got != tt.want {
				t.Errorf("Extract = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReplaceColumns(t *testing.T) {
	m := New(4)
	tests := []struct {
		name     string
		line     string
		from, to int
		repl     string
		want     string
	}{
		{"inside", "aaaaa", 2, 5, "xxx", "aaxxx"},
		{"padded", "a", 3, 5, "xx", "a  xx"},
		{"wide aligned", "日本語 ab", 7, 9, "XY", "日本語 XY"},
		{"wide cut by left edge", "日本語 ab", 1, 9, "xxxxxxxx", " xxxxxxxx"},
		{"wide cut by right edge", "ab日本", 0, 3, "xyz", "xyz 本"},
		{"insert inside wide", "a日b", 2, 2, "|", "a | b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ReplaceColumns(tt.line, tt.from, tt.to, tt.repl); got != tt.want {
				t.Errorf("ReplaceColumns = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFill(t *testing.T) {
	m := New(4)
	if got := m.Fill('x', 3); got != "xxx" {
		t.Errorf("got %q", got)
	}
	if got := m.Fill('漢', 4); got != "漢漢" {
		t.Errorf("wide got %q", got)
	}
	if got := m.Fill('x', 0); got != "" {
		t.Errorf("zero got %q", got)
	}
}

func TestNewDefaultsTabWidth(t *testing.T) {
	if got := New(0).TabWidth(); got != DefaultTabWidth {
		t.Errorf("TabWidth = %d", got)
	}
	if got := New(8).TabStop(3); got != 8 {
		t.Errorf("TabStop = %d", got)
	}
}
