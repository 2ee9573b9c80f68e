package diff

// Stats summarizes a review for display.
type Stats struct {
	Hunks       int
	Added       int
	Removed     int
	Current     int
	Accepted    int
	AcceptedAll bool // AcceptAll in effect with no hunk rejected since
}

// Session is an interactive review of a proposal against an original.
// The hunk list is fixed at creation; only accept flags and the current
// index change.
type Session struct {
	original  []string
	hunks     []Hunk
	current   int
	acceptAll bool
}

// NewSession diffs original against proposed. Both slices are copied.
func NewSession(original, proposed []string) *Session {
	orig := append([]string(nil), original...)
	prop := append([]string(nil), proposed...)
	return &Session{
		original: orig,
		hunks:    Compute(orig, prop),
	}
}

// Original returns a copy of the original lines.
func (s *Session) Original() []string {
	return append([]string(nil), s.original...)
}

// Hunks returns a copy of the hunk list.
func (s *Session) Hunks() []Hunk {
	return append([]Hunk(nil), s.hunks...)
}

// Len returns the number of hunks.
func (s *Session) Len() int {
	return len(s.hunks)
}

// Index returns the current hunk index.
func (s *Session) Index() int {
	return s.current
}

// Current returns the current hunk.
func (s *Session) Current() (Hunk, bool) {
	if s.current >= len(s.hunks) {
		return Hunk{}, false
	}
	return s.hunks[s.current], true
}

// AcceptCurrent marks the current hunk accepted.
func (s *Session) AcceptCurrent() bool {
	return s.setCurrent(true)
}

// RejectCurrent marks the current hunk rejected.
func (s *Session) RejectCurrent() bool {
	return s.setCurrent(false)
}

func (s *Session) setCurrent(accepted bool) bool {
	if s.current >= len(s.hunks) {
		return false
	}
	s.hunks[s.current].Accepted = accepted
	if !accepted {
		s.acceptAll = false
	}
	return true
}

// Next moves to the following hunk. It reports false at the last hunk.
func (s *Session) Next() bool {
	if s.current+1 >= len(s.hunks) {
		return false
	}
	s.current++
	return true
}

// Prev moves to the preceding hunk. It reports false at the first hunk.
func (s *Session) Prev() bool {
	if s.current == 0 {
		return false
	}
	s.current--
	return true
}

// AcceptAll marks every hunk accepted.
func (s *Session) AcceptAll() {
	s.setAll(true)
}

// RejectAll marks every hunk rejected.
func (s *Session) RejectAll() {
	s.setAll(false)
}

func (s *Session) setAll(accepted bool) {
	for i := range s.hunks {
		s.hunks[i].Accepted = accepted
	}
	s.acceptAll = accepted
}

// AcceptedAll reports whether AcceptAll is in effect and no hunk has since
// been rejected.
func (s *Session) AcceptedAll() bool {
	return s.acceptAll
}

// AllAccepted reports whether every hunk is accepted.
func (s *Session) AllAccepted() bool {
	for _, h := range s.hunks {
		if !h.Accepted {
			return false
		}
	}
	return true
}

// Reconstruct returns the original with the accepted hunks applied.
func (s *Session) Reconstruct() []string {
	return Reconstruct(s.original, s.hunks)
}

// DisplayRow returns the row at which the current hunk starts in the
// reconstructed buffer.
func (s *Session) DisplayRow() int {
	if s.current >= len(s.hunks) {
		return 0
	}
	offset := 0
	for _, h := range s.hunks[:s.current] {
		if h.Accepted {
			offset += h.NewLines - h.OldLines
		}
	}
	return max(s.hunks[s.current].OldStart+offset, 0)
}

// Stats returns counts over all hunks.
func (s *Session) Stats() Stats {
	st := Stats{Hunks: len(s.hunks), Current: s.current, AcceptedAll: s.acceptAll}
	for _, h := range s.hunks {
		st.Added += h.Count(Added)
		st.Removed += h.Count(Removed)
		if h.Accepted {
			st.Accepted++
		}
	}
	return st
}
