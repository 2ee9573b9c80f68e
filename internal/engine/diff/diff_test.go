package diff

import (
	"reflect"
	"strings"
	"testing"
)

func lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func TestComputeSingleChange(t *testing.T) {
	hunks := Compute(lines("a,b,c"), lines("a,x,c"))
	if len(hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(hunks))
	}
	h := hunks[0]
	if h.OldStart != 1 || h.OldLines != 1 || h.NewStart != 1 || h.NewLines != 1 {
		t.Errorf("unexpected bounds %+v", h)
	}
	want := []Record{{Removed, "b"}, {Added, "x"}}
	if !reflect.DeepEqual(h.Records, want) {
		t.Errorf("records = %v, want %v", h.Records, want)
	}
}

func TestComputeIdentical(t *testing.T) {
	if hunks := Compute(lines("a,b"), lines("a,b")); len(hunks) != 0 {
		t.Errorf("expected no hunks, got %v", hunks)
	}
}

func TestComputeGreedyReorder(t *testing.T) {
	// No look-ahead: the swap becomes a removal then an append.
	hunks := Compute(lines("a,b"), lines("b,a"))
	if len(hunks) != 2 {
		t.Fatalf("expected 2 hunks, got %+v", hunks)
	}
	if hunks[0].OldStart != 0 || hunks[0].OldLines != 1 || hunks[0].NewLines != 0 {
		t.Errorf("first hunk = %+v", hunks[0])
	}
	if hunks[1].OldStart != 2 || hunks[1].OldLines != 0 || hunks[1].NewLines != 1 {
		t.Errorf("second hunk = %+v", hunks[1])
	}
}

func TestComputeOrderedNonOverlapping(t *testing.T) {
	hunks := Compute(lines("a,b,c,d,e,f"), lines("a,B,c,d,E,F,g"))
	end := -1
	for _, h := range hunks {
		if h.OldStart < end {
			t.Errorf("hunk %+v overlaps previous end %d", h, end)
		}
		end = h.OldStart + h.OldLines
	}
}

func TestReconstructRoundTrip(t *testing.T) {
	pairs := []struct {
		name     string
		original string
		proposed string
	}{
		{"replace", "a,b,c", "a,x,c"},
		{"insert", "a,c", "a,b,c"},
		{"delete", "a,b,c", "a,c"},
		{"reorder", "a,b", "b,a"},
		{"append", "a", "a,b,c"},
		{"truncate", "a,b,c", "a"},
		{"empty original", "", "x,y"},
		{"empty proposal", "x,y", ""},
		{"grow and shrink", "1,2,3,4,5,6", "1,two,two,3,6,7"},
		{"disjoint", "p,q,r,s,t", "q,r,S,t,u,v"},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			orig, prop := lines(tt.original), lines(tt.proposed)
			hunks := Compute(orig, prop)

			if got := Reconstruct(orig, hunks); !equal(got, orig) {
				t.Errorf("none accepted = %v, want %v", got, orig)
			}
			for i := range hunks {
				hunks[i].Accepted = true
			}
			if got := Reconstruct(orig, hunks); !equal(got, prop) {
				t.Errorf("all accepted = %v, want %v", got, prop)
			}
		})
	}
}

func equal(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

func TestReconstructPartial(t *testing.T) {
	orig := lines("a,b,c,d")
	hunks := Compute(orig, lines("a,c,D"))
	if len(hunks) != 2 {
		t.Fatalf("expected 2 hunks, got %+v", hunks)
	}

	hunks[1].Accepted = true
	if got, want := Reconstruct(orig, hunks), lines("a,b,c,D"); !equal(got, want) {
		t.Errorf("second only = %v, want %v", got, want)
	}
	hunks[0].Accepted = true
	if got, want := Reconstruct(orig, hunks), lines("a,c,D"); !equal(got, want) {
		t.Errorf("both = %v, want %v", got, want)
	}
}

func TestSessionNavigation(t *testing.T) {
	s := NewSession(lines("a,b,c,d"), lines("a,B,c,D"))
	if s.Len() != 2 {
		t.Fatalf("expected 2 hunks, got %d", s.Len())
	}
	if s.Prev() {
		t.Error("Prev at first hunk should fail")
	}
	if !s.Next() || s.Index() != 1 {
		t.Error("Next should advance to 1")
	}
	if s.Next() {
		t.Error("Next at last hunk should fail")
	}
	if !s.Prev() || s.Index() != 0 {
		t.Error("Prev should return to 0")
	}
}

func TestSessionAcceptReject(t *testing.T) {
	s := NewSession(lines("a,b,c,d"), lines("a,B,c,D"))
	s.AcceptCurrent()
	if got, want := s.Reconstruct(), lines("a,B,c,d"); !equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if s.AllAccepted() {
		t.Error("only one hunk is accepted")
	}

	s.AcceptAll()
	if !s.AllAccepted() || !s.AcceptedAll() {
		t.Error("AcceptAll should accept every hunk")
	}
	if got := s.Reconstruct(); !equal(got, lines("a,B,c,D")) {
		t.Errorf("got %v, want proposal", got)
	}

	s.RejectCurrent()
	if s.AcceptedAll() {
		t.Error("rejecting a hunk clears the accept-all marker")
	}

	s.RejectAll()
	if got := s.Reconstruct(); !equal(got, s.Original()) {
		t.Errorf("got %v, want original", got)
	}
}

func TestSessionStats(t *testing.T) {
	// Greedy sync never realigns on "c", so everything after "a" is one hunk.
	s := NewSession(lines("a,b,c"), lines("a,x,y,c,z"))
	s.AcceptCurrent()
	st := s.Stats()
	want := Stats{Hunks: 1, Added: 4, Removed: 2, Current: 0, Accepted: 1}
	if st != want {
		t.Errorf("Stats = %+v, want %+v", st, want)
	}
}

func TestSessionDisplayRow(t *testing.T) {
	s := NewSession(lines("a,b,c,d"), lines("a,c,D"))
	s.AcceptCurrent()
	s.Next()
	// The accepted first hunk removed a line, so the second starts one row
	// earlier.
	if got := s.DisplayRow(); got != 2 {
		t.Errorf("DisplayRow = %d, want 2", got)
	}
	s.Prev()
	s.RejectCurrent()
	s.Next()
	if got := s.DisplayRow(); got != 3 {
		t.Errorf("DisplayRow = %d, want 3", got)
	}
}

func TestSessionCopiesInput(t *testing.T) {
	orig := lines("a,b")
	s := NewSession(orig, lines("a,c"))
	orig[0] = "changed"
	if s.Original()[0] != "a" {
		t.Error("session should own a copy of the original")
	}
}

func TestEmptySession(t *testing.T) {
	s := NewSession(lines("a"), lines("a"))
	if s.AcceptCurrent() || s.RejectCurrent() {
		t.Error("accept/reject without hunks should report false")
	}
	if _, ok := s.Current(); ok {
		t.Error("no current hunk expected")
	}
	if !s.AllAccepted() {
		t.Error("vacuously all accepted")
	}
}
