package diff

// Kind tags a record within a hunk.
type Kind uint8

const (
	Context Kind = iota
	Added
	Removed
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Context:
		return "context"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Record is one line of a hunk.
type Record struct {
	Kind Kind
	Text string
}

// Hunk is a contiguous divergence between the original and the proposal.
// OldStart and NewStart are zero-based line indexes.
type Hunk struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int
	Records  []Record
	Accepted bool
}

// Added returns the proposed lines of the hunk in order.
func (h Hunk) Added() []string {
	out := make([]string, 0, h.NewLines)
	for _, r := range h.Records {
		if r.Kind != Removed {
			out = append(out, r.Text)
		}
	}
	return out
}

// Count returns the number of records of kind k.
func (h Hunk) Count(k Kind) int {
	n := 0
	for _, r := range h.Records {
		if r.Kind == k {
			n++
		}
	}
	return n
}

// Compute returns the hunks that turn original into proposed, ordered by
// OldStart.
func Compute(original, proposed []string) []Hunk {
	var (
		hunks []Hunk
		cur   *Hunk
		i, j  int
	)
	closeHunk := func() {
		if cur == nil {
			return
		}
		cur.OldLines = i - cur.OldStart
		cur.NewLines = j - cur.NewStart
		hunks = append(hunks, *cur)
		cur = nil
	}

	for i < len(original) || j < len(proposed) {
		if i < len(original) && j < len(proposed) && original[i] == proposed[j] {
			closeHunk()
			i++
			j++
			continue
		}
		if cur == nil {
			cur = &Hunk{OldStart: i, NewStart: j}
		}
		if i < len(original) && (j >= len(proposed) || original[i] != proposed[j]) {
			cur.Records = append(cur.Records, Record{Kind: Removed, Text: original[i]})
			i++
		}
		// i may have advanced: the proposed line is compared against the
		// next original line.
		if j < len(proposed) && (i >= len(original) || original[i] != proposed[j]) {
			cur.Records = append(cur.Records, Record{Kind: Added, Text: proposed[j]})
			j++
		}
	}
	closeHunk()
	return hunks
}

// Reconstruct applies the accepted hunks to a copy of original. Each hunk
// replaces its OldLines original lines with its added lines, shifted by
// the net line change of the hunks applied before it.
func Reconstruct(original []string, hunks []Hunk) []string {
	out := append([]string(nil), original...)
	offset := 0
	for _, h := range hunks {
		if !h.Accepted {
			continue
		}
		pos := min(max(h.OldStart+offset, 0), len(out))
		end := min(pos+h.OldLines, len(out))
		added := h.Added()

		next := make([]string, 0, len(out)-(end-pos)+len(added))
		next = append(next, out[:pos]...)
		next = append(next, added...)
		next = append(next, out[end:]...)
		out = next

		offset += h.NewLines - h.OldLines
	}
	return out
}
