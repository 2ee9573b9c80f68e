// Package buffer provides the line buffer at the heart of the editor.
//
// A Buffer is an ordered sequence of lines that is never empty: a buffer
// created from empty text holds a single empty line. Lines are stored
// without their terminating newline and are joined with "\n" when the
// buffer is converted back to text, so Split and Join round-trip exactly:
//
//	buf := buffer.New("alpha\nbeta")
//	buf.LineCount()     // 2
//	buf.Line(1)         // "beta"
//	buf.Text()          // "alpha\nbeta"
//
// Positions are expressed as Points whose Col is a display column (terminal
// cells), not a byte offset. The buffer's text.Metrics performs the
// conversion, so wide characters and tabs are measured consistently by every
// package that edits lines.
//
// Snapshots:
//
// Snapshot returns an immutable copy of the line sequence. Snapshots share
// the underlying string data with the buffer (Go strings are immutable), so
// taking one costs a slice of string headers rather than a deep copy of the
// text. The undo history and the diff engine store snapshots.
//
// Thread Safety:
//
// A Buffer is owned by a single editor session and is not safe for
// concurrent mutation. Snapshots may be shared freely across goroutines.
package buffer
