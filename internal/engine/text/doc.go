// Package text measures lines of text in terminal display cells.
//
// A line is segmented into glyphs (extended grapheme clusters). Each glyph
// has a display width: wide East Asian characters and most emoji take two
// cells, combining sequences take the width of their base, and a tab
// advances to the next multiple of the configured tab width.
//
// All editor coordinates are expressed in display columns. Metrics converts
// between display columns and byte offsets:
//
//	m := text.New(4)
//	m.Width("a漢b")           // 4
//	m.ByteOffset("a漢b", 3)   // 4 (start of "b")
//	m.ColumnAt("a漢b", 1)     // 1
//
// A column that falls inside a wide glyph resolves to the next glyph
// boundary. A column past the end of the line resolves to len(line).
package text
