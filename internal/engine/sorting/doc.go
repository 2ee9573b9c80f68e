// Package sorting reorders buffer lines by multi-key column ranges.
//
// A Key extracts the display columns [Start, End) of a row. Keys form a
// lexicographic comparator: earlier keys dominate and ties cascade to later
// keys. Rows that tie on every key keep their original relative order.
//
// Columns past the end of a row read as spaces, so short rows never cause
// an error and sort as if space-padded.
package sorting
