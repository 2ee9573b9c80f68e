package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a Metrics is created with a non-positive width.
const DefaultTabWidth = 4

// Glyph is a single grapheme cluster positioned on a line.
type Glyph struct {
	Text   string // Cluster text
	Offset int    // Byte offset of the cluster within the line
	Col    int    // Display column where the cluster starts
	Width  int    // Display width in cells
}

// End returns the byte offset just past the glyph.
func (g Glyph) End() int {
	return g.Offset + len(g.Text)
}

// EndCol returns the display column just past the glyph.
func (g Glyph) EndCol() int {
	return g.Col + g.Width
}

// Metrics converts between display columns and byte offsets.
// The zero value is not usable; create one with New.
type Metrics struct {
	tabWidth int
}

// New creates Metrics for the given tab width.
func New(tabWidth int) Metrics {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return Metrics{tabWidth: tabWidth}
}

// TabWidth returns the configured tab width.
func (m Metrics) TabWidth() int {
	if m.tabWidth <= 0 {
		return DefaultTabWidth
	}
	return m.tabWidth
}

// TabStop returns the column of the next tab stop after col.
func (m Metrics) TabStop(col int) int {
	tw := m.TabWidth()
	return (col/tw + 1) * tw
}

// ClusterWidth returns the display width of cluster when it starts at col.
func (m Metrics) ClusterWidth(cluster string, col int) int {
	if cluster == "\t" {
		return m.TabStop(col) - col
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		// runewidth reports zero for some emoji sequences uniseg measures.
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	if w < 0 {
		w = 0
	}
	return w
}

// RuneWidth returns the display width of r when typed at col.
func (m Metrics) RuneWidth(r rune, col int) int {
	return m.ClusterWidth(string(r), col)
}

// Each calls fn for every glyph of line, left to right.
// Iteration stops when fn returns false.
func (m Metrics) Each(line string, fn func(g Glyph) bool) {
	if line == "" {
		return
	}
	col, off := 0, 0
	state := -1
	rest := line
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		g := Glyph{
			Text:   cluster,
			Offset: off,
			Col:    col,
			Width:  m.ClusterWidth(cluster, col),
		}
		if !fn(g) {
			return
		}
		off += len(cluster)
		col += g.Width
	}
}

// Glyphs returns all glyphs of line.
func (m Metrics) Glyphs(line string) []Glyph {
	var out []Glyph
	m.Each(line, func(g Glyph) bool {
		out = append(out, g)
		return true
	})
	return out
}

// Width returns the display width of line.
func (m Metrics) Width(line string) int {
	w := 0
	m.Each(line, func(g Glyph) bool {
		w = g.EndCol()
		return true
	})
	return w
}

// ByteOffset returns the byte offset of the first glyph starting at or after
// col. Columns past the end of the line return len(line).
func (m Metrics) ByteOffset(line string, col int) int {
	if col <= 0 {
		return 0
	}
	off := len(line)
	m.Each(line, func(g Glyph) bool {
		if g.Col >= col {
			off = g.Offset
			return false
		}
		return true
	})
	return off
}

// ColumnAt returns the display column at byte offset off.
// Offsets inside a glyph resolve to that glyph's column.
func (m Metrics) ColumnAt(line string, off int) int {
	if off <= 0 {
		return 0
	}
	col := 0
	found := false
	m.Each(line, func(g Glyph) bool {
		if g.End() > off {
			col = g.Col
			found = true
			return false
		}
		col = g.EndCol()
		return true
	})
	if !found {
		return m.Width(line)
	}
	return col
}

// GlyphAt returns the glyph that starts at the byte offset resolved for col.
func (m Metrics) GlyphAt(line string, col int) (Glyph, bool) {
	off := m.ByteOffset(line, col)
	var out Glyph
	ok := false
	m.Each(line, func(g Glyph) bool {
		if g.Offset == off {
			out, ok = g, true
			return false
		}
		return g.Offset < off
	})
	return out, ok
}

// GlyphBefore returns the glyph immediately before the byte offset resolved
// for col.
func (m Metrics) GlyphBefore(line string, col int) (Glyph, bool) {
	off := m.ByteOffset(line, col)
	var out Glyph
	ok := false
	m.Each(line, func(g Glyph) bool {
		if g.Offset >= off {
			return false
		}
		out, ok = g, true
		return true
	})
	return out, ok
}

// Extract returns the content of columns [from, to) as exactly to-from
// cells. Tabs and glyphs cut by either edge read as spaces, as do columns
// past the end of the line.
func (m Metrics) Extract(line string, from, to int) string {
	if to <= from {
		return ""
	}
	var sb strings.Builder
	col := from
	m.Each(line, func(g Glyph) bool {
		if g.Col >= to {
			return false
		}
		if g.Col < from && g.EndCol() <= from {
			return true
		}
		if g.Text == "\t" || g.Col < from || g.EndCol() > to {
			sb.WriteString(strings.Repeat(" ", min(g.EndCol(), to)-max(g.Col, from)))
		} else {
			sb.WriteString(g.Text)
		}
		col = min(g.EndCol(), to)
		return true
	})
	if col < to {
		sb.WriteString(strings.Repeat(" ", to-col))
	}
	return sb.String()
}

// PadTo appends spaces to line until it is at least col cells wide.
func (m Metrics) PadTo(line string, col int) string {
	if w := m.Width(line); w < col {
		return line + strings.Repeat(" ", col-w)
	}
	return line
}

// ReplaceColumns replaces the content of columns [from, to) with repl.
// The line is space-padded to from and glyphs cut by either edge become
// spaces, so the replacement always lands at column from.
func (m Metrics) ReplaceColumns(line string, from, to int, repl string) string {
	line = m.PadTo(line, from)
	line = m.splitAt(line, from)
	line = m.splitAt(line, to)
	start := m.ByteOffset(line, from)
	end := m.ByteOffset(line, to)
	if end < start {
		end = start
	}
	return line[:start] + repl + line[end:]
}

// splitAt replaces the glyph spanning col with spaces so that col falls on
// a glyph boundary.
func (m Metrics) splitAt(line string, col int) string {
	var cut Glyph
	found := false
	m.Each(line, func(g Glyph) bool {
		if g.Col >= col {
			return false
		}
		if g.EndCol() > col {
			cut, found = g, true
			return false
		}
		return true
	})
	if !found {
		return line
	}
	return line[:cut.Offset] + strings.Repeat(" ", cut.Width) + line[cut.End():]
}

// Fill returns r repeated to cover width cells. Wide runes are repeated
// floor(width/runeWidth) times, with at least one copy.
func (m Metrics) Fill(r rune, width int) string {
	if width <= 0 {
		return ""
	}
	w := m.RuneWidth(r, 0)
	if w <= 0 {
		w = 1
	}
	n := width / w
	if n == 0 {
		n = 1
	}
	return strings.Repeat(string(r), n)
}
