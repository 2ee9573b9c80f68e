package search

// State is the result of the last search: the query, its ordered match list
// and a circular current index. A pending replacement turns the state into
// single-step replace mode.
type State struct {
	query       Query
	matches     []Match
	current     int
	replacement string
	replacing   bool
}

// NewState creates a state for q holding matches.
func NewState(q Query, matches []Match) *State {
	return &State{query: q, matches: matches}
}

// Query returns the query that produced the matches.
func (s *State) Query() Query {
	return s.query
}

// Matches returns a copy of the match list.
func (s *State) Matches() []Match {
	return append([]Match(nil), s.matches...)
}

// Len returns the number of matches.
func (s *State) Len() int {
	return len(s.matches)
}

// Index returns the current match index.
func (s *State) Index() int {
	return s.current
}

// Current returns the current match.
func (s *State) Current() (Match, bool) {
	if s.current < 0 || s.current >= len(s.matches) {
		return Match{}, false
	}
	return s.matches[s.current], true
}

// Next advances the current index circularly and returns the new match.
func (s *State) Next() (Match, bool) {
	if len(s.matches) == 0 {
		return Match{}, false
	}
	s.current = (s.current + 1) % len(s.matches)
	return s.matches[s.current], true
}

// Reset replaces the match list, keeping the current index clamped into
// the new list.
func (s *State) Reset(matches []Match) {
	s.matches = matches
	if s.current >= len(matches) {
		s.current = len(matches) - 1
	}
	if s.current < 0 {
		s.current = 0
	}
}

// SetReplacement stages single-step replace mode with repl.
func (s *State) SetReplacement(repl string) {
	s.replacement = repl
	s.replacing = true
}

// Replacement returns the staged replacement text, if any.
func (s *State) Replacement() (string, bool) {
	return s.replacement, s.replacing
}
