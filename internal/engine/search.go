package engine

import (
	"github.com/dshills/vedit/internal/engine/cursor"
	"github.com/dshills/vedit/internal/engine/search"
)

// ============================================================================
// Search and Replace
// ============================================================================

// query builds a search query, binding block scope to the active block
// selection.
func (e *Editor) query(target string, scope Scope, caseSensitive bool) (search.Query, error) {
	q := search.Query{Target: target, Scope: scope, CaseSensitive: caseSensitive}
	if scope == ScopeBlock {
		bs, ok := e.sel.(cursor.BlockSelection)
		if !ok {
			return q, ErrNoSelection
		}
		q.Block = bs
	}
	return q, q.Validate()
}

// Find searches for target and moves the cursor to the first match.
// It returns the number of matches.
func (e *Editor) Find(target string, scope Scope, caseSensitive bool) (int, error) {
	q, err := e.query(target, scope, caseSensitive)
	if err != nil {
		return 0, err
	}
	matches, err := search.FindAll(e.buf, e.metrics, q)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		e.search = nil
		return 0, ErrNoMatch
	}
	e.search = search.NewState(q, matches)
	e.jumpTo(matches[0])
	return len(matches), nil
}

// FindNext moves to the next match, wrapping around at the end.
func (e *Editor) FindNext() (Match, error) {
	if e.search == nil {
		return Match{}, ErrNoMatch
	}
	m, ok := e.search.Next()
	if !ok {
		return Match{}, ErrNoMatch
	}
	e.jumpTo(m)
	return m, nil
}

// Replace finds every match of find. With all set every match is replaced
// at once and the count of replacements is returned; otherwise step mode
// is staged for ReplaceNext, the cursor jumps to the first match, and the
// match count is returned.
func (e *Editor) Replace(find, repl string, scope Scope, all, caseSensitive bool) (int, error) {
	if e.ReadOnly() {
		return 0, nil
	}
	q, err := e.query(find, scope, caseSensitive)
	if err != nil {
		return 0, err
	}
	matches, err := search.FindAll(e.buf, e.metrics, q)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		e.search = nil
		return 0, ErrNoMatch
	}

	if !all {
		e.search = search.NewState(q, matches)
		e.search.SetReplacement(repl)
		e.jumpTo(matches[0])
		return len(matches), nil
	}

	e.saveState()
	total := 0
	for row, ms := range search.GroupByRow(matches) {
		line, n := search.ReplaceInLine(e.metrics, e.buf.Line(row), ms, repl)
		_ = e.buf.SetLine(row, line)
		total += n
	}
	e.search = nil
	e.modified = true
	if !e.virtual {
		e.clampCursor()
	}
	return total, nil
}

// ReplaceNext replaces the current match with the staged replacement,
// re-runs the search and moves to the match now at the current index.
// It returns the number of matches left.
func (e *Editor) ReplaceNext() (int, error) {
	if e.ReadOnly() {
		return 0, nil
	}
	if e.search == nil {
		return 0, ErrNotReplacing
	}
	repl, ok := e.search.Replacement()
	if !ok {
		return 0, ErrNotReplacing
	}
	m, ok := e.search.Current()
	if !ok {
		return 0, ErrNoMatch
	}

	e.saveState()
	line := e.metrics.ReplaceColumns(e.buf.Line(m.Row), m.Start, m.End, repl)
	_ = e.buf.SetLine(m.Row, line)
	e.modified = true

	e.refreshMatches()
	if e.search == nil {
		return 0, nil
	}
	if next, ok := e.search.Current(); ok {
		e.jumpTo(next)
	}
	return e.search.Len(), nil
}

// refreshMatches re-runs the active query against the current buffer,
// keeping the current index clamped. The search is cleared when nothing
// matches any more.
func (e *Editor) refreshMatches() {
	if e.search == nil {
		return
	}
	matches, err := search.FindAll(e.buf, e.metrics, e.search.Query())
	if err != nil || len(matches) == 0 {
		e.search = nil
		return
	}
	e.search.Reset(matches)
}

// ClearSearch drops the match list and any staged replacement.
func (e *Editor) ClearSearch() {
	e.search = nil
}

// CurrentMatch returns the match to highlight.
func (e *Editor) CurrentMatch() (Match, bool) {
	if e.search == nil {
		return Match{}, false
	}
	return e.search.Current()
}

// Matches returns every match of the active search.
func (e *Editor) Matches() []Match {
	if e.search == nil {
		return nil
	}
	return e.search.Matches()
}

// MatchCount returns the number of matches of the active search.
func (e *Editor) MatchCount() int {
	if e.search == nil {
		return 0
	}
	return e.search.Len()
}

// Replacing reports whether step replace mode is staged.
func (e *Editor) Replacing() bool {
	if e.search == nil {
		return false
	}
	_, ok := e.search.Replacement()
	return ok
}

func (e *Editor) jumpTo(m Match) {
	e.cur = cursor.New(m.Row, m.Start)
	e.scroll()
}
