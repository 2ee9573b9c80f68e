package engine

import (
	"strings"

	"github.com/dshills/vedit/internal/engine/buffer"
)

// Span is an inclusive row range of the buffer.
type Span struct {
	Top    int
	Bottom int
}

// Proposal is the outcome of a rewrite request: replacement text for the
// request's span, or the error that prevented it.
type Proposal struct {
	ID   string
	Text string
	Err  error

	// Span is the row range the text replaces. Nil means the whole buffer.
	Span *Span
}

// ProposalSource delivers at most one finished proposal per call without
// blocking.
type ProposalSource interface {
	Poll() (Proposal, bool)
}

// RewriteTarget returns the text a rewrite request should operate on: the
// rows of the active selection, or the whole buffer when nothing is
// selected.
func (e *Editor) RewriteTarget() (string, *Span) {
	top, bottom, ok := e.selectedRows()
	if !ok {
		return e.buf.Text(), nil
	}
	rows := e.buf.Lines()[top : bottom+1]
	return buffer.Join(rows), &Span{Top: top, Bottom: bottom}
}

// PollProposal checks src for a finished proposal. A successful proposal
// starts a diff review; a failed one returns its error and leaves the
// buffer untouched. It reports whether a proposal was consumed. Nothing is
// polled while a review is active.
func (e *Editor) PollProposal(src ProposalSource) (bool, error) {
	if e.diff != nil {
		return false, nil
	}
	p, ok := src.Poll()
	if !ok {
		return false, nil
	}
	if p.Err != nil {
		return true, p.Err
	}
	return true, e.StartDiff(e.proposedLines(p))
}

// proposedLines splices the proposal text into a copy of the buffer.
func (e *Editor) proposedLines(p Proposal) []string {
	text := strings.TrimSuffix(buffer.NormalizeLineEndings(p.Text), "\n")
	repl := buffer.Split(text)
	lines := e.buf.Lines()
	if p.Span == nil {
		return repl
	}

	top := min(max(p.Span.Top, 0), len(lines))
	bottom := min(max(p.Span.Bottom+1, top), len(lines))
	out := make([]string, 0, len(lines)-(bottom-top)+len(repl))
	out = append(out, lines[:top]...)
	out = append(out, repl...)
	out = append(out, lines[bottom:]...)
	return out
}
