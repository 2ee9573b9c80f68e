package search

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dshills/vedit/internal/engine/cursor"
	"github.com/dshills/vedit/internal/engine/text"
)

// Errors returned by search operations.
var (
	ErrEmptyTarget  = errors.New("search target is empty")
	ErrInvalidScope = errors.New("invalid search scope")
)

// Scope selects the part of the buffer a search covers.
type Scope uint8

const (
	ScopeAll Scope = iota
	ScopeLine
	ScopeBlock
)

// String returns a human-readable representation of the scope.
func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeLine:
		return "line"
	case ScopeBlock:
		return "block"
	default:
		return "unknown"
	}
}

// ParseScope parses "all", "line" or "block".
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(s) {
	case "all", "a":
		return ScopeAll, nil
	case "line", "l":
		return ScopeLine, nil
	case "block", "b":
		return ScopeBlock, nil
	}
	return ScopeAll, fmt.Errorf("%w: %q", ErrInvalidScope, s)
}

// Match is a hit on Row spanning display columns [Start, End).
type Match struct {
	Row   int
	Start int
	End   int
}

// Width returns the number of columns the match covers.
func (m Match) Width() int {
	return m.End - m.Start
}

// Lines is the read-only view of a buffer that search needs.
// Both *buffer.Buffer and buffer.Snapshot satisfy it.
type Lines interface {
	LineCount() int
	Line(row int) string
}

// Query describes a search.
type Query struct {
	Target        string
	Scope         Scope
	CaseSensitive bool

	// Block bounds a ScopeBlock search. It is ignored for other scopes.
	Block cursor.BlockSelection
}

// Validate checks that the query can be run.
func (q Query) Validate() error {
	if q.Target == "" {
		return ErrEmptyTarget
	}
	if q.Scope > ScopeBlock {
		return ErrInvalidScope
	}
	return nil
}

// matcher holds the folded target for one search.
type matcher struct {
	metrics text.Metrics
	fold    func(string) string
	target  []string
}

func newMatcher(m text.Metrics, target string, caseSensitive bool) *matcher {
	mt := &matcher{metrics: m, fold: func(s string) string { return s }}
	if !caseSensitive {
		caser := cases.Fold()
		mt.fold = caser.String
	}
	for _, g := range m.Glyphs(target) {
		mt.target = append(mt.target, mt.fold(g.Text))
	}
	return mt
}

// scan reports matches in line. colOffset is added to every reported column.
// With firstOnly the scan stops after the first hit.
func (mt *matcher) scan(row int, line string, colOffset int, firstOnly bool) []Match {
	glyphs := mt.metrics.Glyphs(line)
	n := len(mt.target)
	if n == 0 || len(glyphs) < n {
		return nil
	}
	folded := make([]string, len(glyphs))
	for i, g := range glyphs {
		folded[i] = mt.fold(g.Text)
	}

	var out []Match
	for i := 0; i+n <= len(glyphs); i++ {
		if !equalAt(folded, i, mt.target) {
			continue
		}
		start := glyphs[i].Col
		end := glyphs[i+n-1].EndCol()
		if end <= start {
			end = start + 1
		}
		out = append(out, Match{Row: row, Start: start + colOffset, End: end + colOffset})
		if firstOnly {
			break
		}
	}
	return out
}

func equalAt(folded []string, i int, target []string) bool {
	for k, t := range target {
		if folded[i+k] != t {
			return false
		}
	}
	return true
}

// FindAll returns every match of q in lines, in discovery order.
func FindAll(lines Lines, m text.Metrics, q Query) ([]Match, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	mt := newMatcher(m, q.Target, q.CaseSensitive)

	var out []Match
	switch q.Scope {
	case ScopeAll, ScopeLine:
		for row := 0; row < lines.LineCount(); row++ {
			out = append(out, mt.scan(row, lines.Line(row), 0, q.Scope == ScopeLine)...)
		}
	case ScopeBlock:
		from, to := q.Block.Cols()
		last := min(q.Block.Bottom, lines.LineCount()-1)
		for row := max(q.Block.Top, 0); row <= last; row++ {
			block := m.Extract(lines.Line(row), from, to)
			out = append(out, mt.scan(row, block, from, false)...)
		}
	}
	return out, nil
}

// ReplaceInLine substitutes repl for each non-overlapping match in line.
// matches must all belong to the same row and be ordered by Start; a match
// that overlaps an earlier kept match is skipped.
func ReplaceInLine(m text.Metrics, line string, matches []Match, repl string) (string, int) {
	kept := make([]Match, 0, len(matches))
	end := -1
	for _, mt := range matches {
		if mt.Start < end {
			continue
		}
		kept = append(kept, mt)
		end = mt.End
	}
	// Right to left so earlier columns stay valid as widths change.
	for i := len(kept) - 1; i >= 0; i-- {
		line = m.ReplaceColumns(line, kept[i].Start, kept[i].End, repl)
	}
	return line, len(kept)
}

// GroupByRow splits an ordered match list into per-row runs.
func GroupByRow(matches []Match) map[int][]Match {
	out := make(map[int][]Match)
	for _, mt := range matches {
		out[mt.Row] = append(out[mt.Row], mt)
	}
	return out
}
