package search

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/engine/cursor"
	"github.com/dshills/vedit/internal/engine/text"
)

var metrics = text.New(4)

func find(t *testing.T, lines []string, q Query) []Match {
	t.Helper()
	got, err := FindAll(buffer.FromLines(lines), metrics, q)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	return got
}

func TestFindAllCaseInsensitive(t *testing.T) {
	got := find(t, []string{"Banana", "apple"}, Query{Target: "a", Scope: ScopeAll})
	want := []Match{{0, 1, 2}, {0, 3, 4}, {0, 5, 6}, {1, 0, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFindAllCaseSensitive(t *testing.T) {
	got := find(t, []string{"Apple apple"}, Query{Target: "apple", Scope: ScopeAll, CaseSensitive: true})
	want := []Match{{0, 6, 11}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got = find(t, []string{"Apple apple"}, Query{Target: "APPLE", Scope: ScopeAll})
	if len(got) != 2 {
		t.Errorf("case-insensitive should find 2, got %v", got)
	}
}

func TestFindAllOverlapping(t *testing.T) {
	got := find(t, []string{"aaa"}, Query{Target: "aa", Scope: ScopeAll, CaseSensitive: true})
	want := []Match{{0, 0, 2}, {0, 1, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFindLineScopeFirstPerLine(t *testing.T) {
	got := find(t, []string{"x x x", "none", "x"}, Query{Target: "x", Scope: ScopeLine, CaseSensitive: true})
	want := []Match{{0, 0, 1}, {2, 0, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFindBlockScope(t *testing.T) {
	lines := []string{"ab ab ab", "ab", "ab ab ab"}
	q := Query{
		Target:        "ab",
		Scope:         ScopeBlock,
		CaseSensitive: true,
		Block:         cursor.BlockSelection{Top: 0, Bottom: 1, Left: 2, Right: 6},
	}
	got := find(t, lines, q)
	want := []Match{{0, 3, 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFindWideColumns(t *testing.T) {
	got := find(t, []string{"漢字x漢"}, Query{Target: "x", Scope: ScopeAll, CaseSensitive: true})
	want := []Match{{0, 4, 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFindErrors(t *testing.T) {
	_, err := FindAll(buffer.New("abc"), metrics, Query{Target: ""})
	if !errors.Is(err, ErrEmptyTarget) {
		t.Errorf("expected ErrEmptyTarget, got %v", err)
	}
	_, err = FindAll(buffer.New("abc"), metrics, Query{Target: "a", Scope: Scope(9)})
	if !errors.Is(err, ErrInvalidScope) {
		t.Errorf("expected ErrInvalidScope, got %v", err)
	}
}

func TestReplaceInLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		matches []Match
		repl    string
		want    string
		count   int
	}{
		{"grow", "a-a-a", []Match{{0, 0, 1}, {0, 2, 3}, {0, 4, 5}}, "xyz", "xyz-xyz-xyz", 3},
		{"shrink", "foo bar foo", []Match{{0, 0, 3}, {0, 8, 11}}, "f", "f bar f", 2},
		{"overlap skipped", "aaa", []Match{{0, 0, 2}, {0, 1, 3}}, "b", "ba", 1},
		{"wide", "漢x漢", []Match{{0, 2, 3}}, "字", "漢字漢", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := ReplaceInLine(metrics, tt.line, tt.matches, tt.repl)
			if got != tt.want || n != tt.count {
				t.Errorf("got %q (%d), want %q (%d)", got, n, tt.want, tt.count)
			}
		})
	}
}

func TestParseScope(t *testing.T) {
	for in, want := range map[string]Scope{"all": ScopeAll, "LINE": ScopeLine, "b": ScopeBlock} {
		got, err := ParseScope(in)
		if err != nil || got != want {
			t.Errorf("ParseScope(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseScope("nope"); !errors.Is(err, ErrInvalidScope) {
		t.Errorf("expected ErrInvalidScope, got %v", err)
	}
}

func TestStateStepping(t *testing.T) {
	s := NewState(Query{Target: "a"}, []Match{{0, 0, 1}, {1, 0, 1}, {2, 0, 1}})
	if m, _ := s.Current(); m.Row != 0 {
		t.Errorf("current = %v", m)
	}
	s.Next()
	s.Next()
	if m, _ := s.Next(); m.Row != 0 {
		t.Errorf("Next should wrap, got %v", m)
	}
	s.Next()
	s.Next()
	s.Reset([]Match{{0, 0, 1}})
	if s.Index() != 0 {
		t.Errorf("index should clamp to 0, got %d", s.Index())
	}
	s.Reset(nil)
	if _, ok := s.Current(); ok {
		t.Error("empty state should have no current match")
	}
	if _, ok := s.Replacement(); ok {
		t.Error("no replacement staged yet")
	}
	s.SetReplacement("b")
	if r, ok := s.Replacement(); !ok || r != "b" {
		t.Error("replacement not staged")
	}
}
