// Package cursor provides the cursor position and selection model.
//
// The cursor package handles:
//
//   - Cursor positioning in display columns with the Cursor type
//   - Virtual cursor policy (columns past the end of a line)
//   - Line and block selections via the Selection sum type
//
// Selection Model:
//
// A Selection is one of two concrete variants, and a nil Selection means
// nothing is selected:
//
//   - LineSelection: a range of whole rows plus a column bound used when
//     filling and rendering
//   - BlockSelection: an inclusive rectangle of rows and display columns
//
// Each variant carries only the fields meaningful to it. Callers switch on
// the concrete type:
//
//	switch s := sel.(type) {
//	case cursor.LineSelection:
//	    // s.Top, s.Bottom, s.Width
//	case cursor.BlockSelection:
//	    // s.Top, s.Bottom, s.Left, s.Right
//	}
//
// Extending a selection keeps its top (line) or top-left (block) corner as
// the anchor and normalizes against the new cursor position.
//
// Thread Safety:
//
// Cursor and selection types are immutable value types and safe for
// concurrent use.
package cursor
