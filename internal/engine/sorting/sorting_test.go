package sorting

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dshills/vedit/internal/engine/text"
)

var metrics = text.New(4)

func TestSingleKeyIsStable(t *testing.T) {
	s := New(metrics, []Key{{Start: 0, End: 1, Ascending: true}})
	got := s.Lines([]string{"b1", "a2", "a1"})
	want := []string{"a2", "a1", "b1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMultiKeyCascade(t *testing.T) {
	keys := []Key{
		{Start: 0, End: 1, Ascending: true},
		{Start: 1, End: 2, Ascending: false},
	}
	got := New(metrics, keys).Lines([]string{"b1", "a1", "a2", "b3"})
	want := []string{"a2", "a1", "b3", "b1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDescending(t *testing.T) {
	got := New(metrics, []Key{{Start: 0, End: 3, Ascending: false}}).Lines([]string{"abc", "xyz", "mno"})
	want := []string{"xyz", "mno", "abc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestShortLinesSortAsSpaces(t *testing.T) {
	// Column 3 is past the end of "ab", which reads as a space and sorts
	// before any letter.
	got := New(metrics, []Key{{Start: 3, End: 4, Ascending: true}}).Lines([]string{"abcz", "ab", "abca"})
	want := []string{"ab", "abca", "abcz"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNoKeysSortsWholeLines(t *testing.T) {
	got := New(metrics, nil).Lines([]string{"b", "c", "a"})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInputNotModified(t *testing.T) {
	in := []string{"b", "a"}
	New(metrics, nil).Lines(in)
	if in[0] != "b" {
		t.Error("input slice was modified")
	}
}

func TestBlockSortsOnlyColumns(t *testing.T) {
	lines := []string{"1 c x", "2 a y", "3 b z"}
	got := New(metrics, []Key{{Start: 2, End: 3, Ascending: true}}).Block(lines, 2, 3)
	want := []string{"1 a x", "2 b y", "3 c z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{"0-1", Key{0, 1, true}, false},
		{"2-5:d", Key{2, 5, false}, false},
		{"2-5:asc", Key{2, 5, true}, false},
		{"5-2", Key{}, true},
		{"x-2", Key{}, true},
		{"3", Key{}, true},
		{"0-1:z", Key{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidKey) {
					t.Errorf("expected ErrInvalidKey, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseKey = %+v, %v", got, err)
			}
			if tt.want.String() == "" {
				t.Error("String should not be empty")
			}
		})
	}
}
