package engine

import (
	"errors"

	"github.com/dshills/vedit/internal/engine/history"
	"github.com/dshills/vedit/internal/engine/search"
)

// Errors returned by editor operations.
var (
	// ErrNoSelection indicates an operation needs a selection (or a block
	// selection for block-scoped searches) and none is active.
	ErrNoSelection = errors.New("no active selection")

	// ErrLineOutOfRange indicates a line jump past the buffer.
	ErrLineOutOfRange = errors.New("line number out of range")

	// ErrNoMatch indicates a search found nothing or no search is active.
	ErrNoMatch = errors.New("no matches")

	// ErrNotReplacing indicates ReplaceNext without a staged replacement.
	ErrNotReplacing = errors.New("no replacement in progress")

	// ErrNoDiffSession indicates a review operation without an active session.
	ErrNoDiffSession = errors.New("no diff session active")

	// ErrDiffActive indicates a proposal arrived while a review is running.
	ErrDiffActive = errors.New("diff session already active")

	// Re-exported from the sub-packages so callers need only this package.
	ErrEmptyTarget   = search.ErrEmptyTarget
	ErrNothingToUndo = history.ErrNothingToUndo
	ErrNothingToRedo = history.ErrNothingToRedo
)
