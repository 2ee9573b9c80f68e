package sorting

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dshills/vedit/internal/engine/text"
)

// ErrInvalidKey indicates a malformed key specification.
var ErrInvalidKey = errors.New("invalid sort key")

// Key extracts display columns [Start, End) for comparison.
type Key struct {
	Start     int
	End       int
	Ascending bool
}

// String returns the key in the form accepted by ParseKey.
func (k Key) String() string {
	dir := "a"
	if !k.Ascending {
		dir = "d"
	}
	return fmt.Sprintf("%d-%d:%s", k.Start, k.End, dir)
}

// ParseKey parses "start-end[:a|:d]". The end column is exclusive.
func ParseKey(s string) (Key, error) {
	k := Key{Ascending: true}
	spec, dir, hasDir := strings.Cut(s, ":")
	if hasDir {
		switch strings.ToLower(dir) {
		case "a", "asc":
		case "d", "desc":
			k.Ascending = false
		default:
			return Key{}, fmt.Errorf("%w: direction %q", ErrInvalidKey, dir)
		}
	}
	from, to, ok := strings.Cut(spec, "-")
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	var err error
	if k.Start, err = strconv.Atoi(from); err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	if k.End, err = strconv.Atoi(to); err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	if k.Start < 0 || k.End <= k.Start {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return k, nil
}

// ParseKeys parses each spec with ParseKey.
func ParseKeys(specs []string) ([]Key, error) {
	keys := make([]Key, 0, len(specs))
	for _, s := range specs {
		k, err := ParseKey(s)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

type row struct {
	text string
	keys []string
}

// Sorter sorts rows with a fixed key list.
type Sorter struct {
	metrics text.Metrics
	keys    []Key
}

// New creates a sorter. An empty key list compares whole rows ascending.
func New(m text.Metrics, keys []Key) *Sorter {
	return &Sorter{metrics: m, keys: keys}
}

// extract returns the space-padded key text of line.
func (s *Sorter) extract(line string, k Key) string {
	return s.metrics.Extract(line, k.Start, k.End)
}

// Lines returns lines sorted by the key list. The input is not modified.
func (s *Sorter) Lines(lines []string) []string {
	return s.sort(lines, 0)
}

// Translated returns lines sorted with every key shifted left by origin,
// for sorting text that was cut out of a block starting at column origin.
// Keys starting before origin are clamped to the block's first column.
func (s *Sorter) Translated(lines []string, origin int) []string {
	return s.sort(lines, origin)
}

func (s *Sorter) sort(lines []string, origin int) []string {
	keys := s.keys
	if origin > 0 {
		keys = make([]Key, len(s.keys))
		for i, k := range s.keys {
			keys[i] = Key{Start: max(k.Start-origin, 0), End: max(k.End-origin, 0), Ascending: k.Ascending}
		}
	}

	rows := make([]row, len(lines))
	for i, line := range lines {
		rows[i].text = line
		if len(keys) == 0 {
			continue
		}
		rows[i].keys = make([]string, len(keys))
		for j, k := range keys {
			rows[i].keys[j] = s.extract(line, k)
		}
	}

	slices.SortStableFunc(rows, func(a, b row) int {
		if len(keys) == 0 {
			return strings.Compare(a.text, b.text)
		}
		for j, k := range keys {
			c := strings.Compare(a.keys[j], b.keys[j])
			if !k.Ascending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})

	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.text
	}
	return out
}

// Block sorts the column range [from, to) of each line, leaving the text
// outside the range in place. Keys use absolute columns.
func (s *Sorter) Block(lines []string, from, to int) []string {
	cells := make([]string, len(lines))
	for i, line := range lines {
		cells[i] = s.metrics.Extract(line, from, to)
	}
	sorted := s.Translated(cells, from)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = s.metrics.ReplaceColumns(line, from, to, sorted[i])
	}
	return out
}
