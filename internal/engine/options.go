package engine

import "github.com/dshills/vedit/internal/engine/text"

// Default configuration values.
const (
	DefaultTabWidth       = text.DefaultTabWidth
	DefaultMaxUndoEntries = 1000
	DefaultViewWidth      = 80
	DefaultViewHeight     = 24
)

// Option configures an Editor during creation.
type Option func(*Editor)

// WithTabWidth sets the display width of a tab stop.
func WithTabWidth(width int) Option {
	return func(e *Editor) {
		if width > 0 {
			e.tabWidth = width
		}
	}
}

// WithVirtualCursor lets the cursor move past the end of a line.
func WithVirtualCursor(on bool) Option {
	return func(e *Editor) {
		e.virtual = on
	}
}

// WithOverwrite sets the initial typing mode.
func WithOverwrite(on bool) Option {
	return func(e *Editor) {
		e.overwrite = on
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(e *Editor) {
		if max > 0 {
			e.maxUndoEntries = max
		}
	}
}

// WithViewport sets the visible text area used for scrolling, paging and
// line selection width.
func WithViewport(width, height int) Option {
	return func(e *Editor) {
		if width > 0 && height > 0 {
			e.viewWidth, e.viewHeight = width, height
		}
	}
}

// WithReadOnly creates a read-only editor.
// Mutating operations become no-ops.
func WithReadOnly() Option {
	return func(e *Editor) {
		e.readOnly = true
	}
}
