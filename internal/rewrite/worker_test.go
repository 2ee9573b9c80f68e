package rewrite

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dshills/vedit/internal/engine"
)

// fakeClient answers from a function, optionally waiting for release.
type fakeClient struct {
	mu      sync.Mutex
	release chan struct{}
	calls   []string
	answer  func(system, user string) (string, error)
}

func (c *fakeClient) Complete(ctx context.Context, system, user string) (string, error) {
	c.mu.Lock()
	c.calls = append(c.calls, user)
	c.mu.Unlock()

	if c.release != nil {
		select {
		case <-c.release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return c.answer(system, user)
}

func upper(_, user string) (string, error) {
	return "UPPER", nil
}

func waitPoll(t *testing.T, w *Worker) engine.Proposal {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if p, ok := w.Poll(); ok {
			return p
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("no proposal")
	return engine.Proposal{}
}

func TestWorker_SubmitPoll(t *testing.T) {
	c := &fakeClient{answer: upper}
	w := NewWorker(c)

	span := &engine.Span{Top: 1, Bottom: 2}
	id, err := w.Submit(context.Background(), Request{Prompt: Inline("shout"), Text: "hi", Span: span})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if id == "" {
		t.Error("empty job id")
	}

	p := waitPoll(t, w)
	if p.ID != id {
		t.Errorf("ID = %q, want %q", p.ID, id)
	}
	if p.Text != "UPPER" || p.Err != nil {
		t.Errorf("proposal = %+v", p)
	}
	if p.Span != span {
		t.Error("span not carried through")
	}
	if c.calls[0] != "User request: shout\n\nText:\nhi" {
		t.Errorf("user message = %q", c.calls[0])
	}
	if w.Busy() {
		t.Error("Busy after Poll")
	}
}

func TestWorker_Busy(t *testing.T) {
	c := &fakeClient{release: make(chan struct{}), answer: upper}
	w := NewWorker(c)

	if _, err := w.Submit(context.Background(), Request{Prompt: Inline("a")}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !w.Busy() {
		t.Error("Busy = false while running")
	}
	if _, err := w.Submit(context.Background(), Request{Prompt: Inline("b")}); !errors.Is(err, ErrBusy) {
		t.Errorf("second Submit = %v, want ErrBusy", err)
	}
	if _, ok := w.Poll(); ok {
		t.Error("Poll returned before completion")
	}

	close(c.release)
	waitPoll(t, w)

	if _, err := w.Submit(context.Background(), Request{Prompt: Inline("c")}); err != nil {
		t.Errorf("Submit after Poll: %v", err)
	}
}

func TestWorker_Error(t *testing.T) {
	boom := errors.New("boom")
	w := NewWorker(&fakeClient{answer: func(_, _ string) (string, error) { return "", boom }})

	if _, err := w.Submit(context.Background(), Request{Prompt: Inline("x")}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	p := waitPoll(t, w)
	if !errors.Is(p.Err, boom) {
		t.Errorf("Err = %v, want boom", p.Err)
	}
}

func TestWorker_Elapsed(t *testing.T) {
	c := &fakeClient{release: make(chan struct{}), answer: upper}
	w := NewWorker(c)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return now }

	if w.Elapsed() != 0 {
		t.Error("Elapsed should be zero when idle")
	}
	if _, err := w.Submit(context.Background(), Request{Prompt: Inline("x")}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	now = now.Add(3 * time.Second)
	if got := w.Elapsed(); got != 3*time.Second {
		t.Errorf("Elapsed = %v, want 3s", got)
	}
	close(c.release)
	waitPoll(t, w)
}

func TestWorker_ProposalSource(t *testing.T) {
	w := NewWorker(&fakeClient{answer: func(_, _ string) (string, error) { return "b\n", nil }})
	e := engine.New("a")

	if _, err := w.Submit(context.Background(), Request{Prompt: Inline("x"), Text: e.Text()}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !e.DiffActive() && time.Now().Before(deadline) {
		if _, err := e.PollProposal(w); err != nil {
			t.Fatalf("PollProposal: %v", err)
		}
		time.Sleep(time.Millisecond)
	}
	if !e.DiffActive() {
		t.Fatal("no diff review started")
	}
	if err := e.AcceptAllHunks(); err != nil {
		t.Fatal(err)
	}
	if err := e.ApplyDiffChanges(); err != nil {
		t.Fatal(err)
	}
	if e.Text() != "b" {
		t.Errorf("Text = %q, want b", e.Text())
	}
}
