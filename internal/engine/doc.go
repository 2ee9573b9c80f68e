// Package engine provides the editing core of vedit.
//
// The engine package serves as the main facade: an Editor combines a line
// buffer, a cursor measured in display columns, a line or block selection,
// linear undo/redo, scoped search and replace, multi-key sorting and an
// interactive diff review of rewrite proposals.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - text: grapheme segmentation and display-column arithmetic
//   - buffer: never-empty line sequence and immutable snapshots
//   - cursor: cursor value and the Line/Block selection sum type
//   - history: snapshot-based linear undo/redo
//   - search: scoped substring search and match state
//   - sorting: stable multi-key column sort
//   - diff: greedy hunk diff and review session
//
// # Threading
//
// An Editor is owned by a single control loop and is not locked. The only
// asynchronous input is a rewrite proposal, delivered through a
// ProposalSource that the loop polls:
//
//	consumed, err := e.PollProposal(worker)
//
// # Basic Usage
//
//	e := engine.New("hello\nworld",
//	    engine.WithTabWidth(4),
//	    engine.WithVirtualCursor(true),
//	)
//
//	e.MoveCursor(5, 0)
//	e.TypeChar('!') // "hello!"
//	e.Undo()        // "hello"
//
// # Virtual Cursor
//
// With the virtual cursor on, the cursor may move past the end of a line.
// Typing there pads the line with spaces first:
//
//	e := engine.New("")
//	e.MoveCursor(5, 0)
//	e.TypeChar('Z') // "     Z"
//
// # Selections
//
// SelectLine and SelectBlock start a selection at the cursor, and extend
// it when called again after the cursor moved:
//
//	e.SelectBlock()
//	e.MoveCursor(2, 1)
//	e.SelectBlock()     // 2×3 rectangle
//	e.FillSelection('x')
//
// # Search and Replace
//
//	n, err := e.Find("foo", engine.ScopeAll, false)
//	e.FindNext()
//
//	e.Replace("foo", "bar", engine.ScopeLine, true, true) // replace all
//
// # Diff Review
//
// A review shows the original with accepted hunks applied; the buffer is
// read-only until the review ends:
//
//	e.StartDiff(proposedLines)
//	e.AcceptCurrentHunk()
//	e.NextHunk()
//	e.ApplyDiffChanges() // or e.CancelDiff()
//
// # Error Handling
//
// User-input failures return sentinel errors and leave the buffer and
// history untouched:
//
//   - ErrNoSelection: fill, move, sort or block search without a selection
//   - ErrLineOutOfRange: GotoLine past the buffer
//   - ErrEmptyTarget: search for ""
//   - ErrNoMatch: nothing found, or no active search
//   - ErrNothingToUndo, ErrNothingToRedo: history exhausted
//   - ErrNoDiffSession: review operation without a review
//
// Mutations while read-only are silent no-ops.
package engine
