package rewrite

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/vedit/internal/engine"
	"github.com/dshills/vedit/internal/logging"
)

// Request is one rewrite job.
type Request struct {
	Prompt Prompt

	// Text is the snapshot the prompt operates on.
	Text string

	// Span is the row range Text was taken from. Nil means the whole
	// buffer.
	Span *engine.Span
}

// Worker runs one rewrite request at a time in the background.
//
// Worker is safe for concurrent use.
type Worker struct {
	client Client
	log    *logging.Logger
	now    func() time.Time

	mu      sync.Mutex
	pending string
	started time.Time
	done    chan engine.Proposal
}

// WorkerOption configures a Worker.
type WorkerOption func(*Worker)

// WithWorkerLogger sets the worker's logger.
func WithWorkerLogger(l *logging.Logger) WorkerOption {
	return func(w *Worker) {
		if l != nil {
			w.log = l
		}
	}
}

// NewWorker creates a worker sending requests through client.
func NewWorker(client Client, opts ...WorkerOption) *Worker {
	w := &Worker{
		client: client,
		log:    logging.Null(),
		now:    time.Now,
		done:   make(chan engine.Proposal, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Submit starts req and returns its job ID. It returns ErrBusy while an
// earlier job has not been collected by Poll.
func (w *Worker) Submit(ctx context.Context, req Request) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != "" {
		return "", ErrBusy
	}

	id := uuid.New().String()
	w.pending = id
	w.started = w.now()

	log := w.log.WithField("job", id)
	log.Info("submitted: %d bytes", len(req.Text))

	go func() {
		system, user := req.Prompt.Messages(req.Text)
		text, err := w.client.Complete(ctx, system, user)
		if err != nil {
			log.Error("failed: %v", err)
		} else {
			log.Info("finished: %d bytes", len(text))
		}
		w.done <- engine.Proposal{ID: id, Text: text, Err: err, Span: req.Span}
	}()
	return id, nil
}

// Poll returns the finished job, if any, without blocking.
func (w *Worker) Poll() (engine.Proposal, bool) {
	select {
	case p := <-w.done:
		w.mu.Lock()
		w.pending = ""
		w.mu.Unlock()
		return p, true
	default:
		return engine.Proposal{}, false
	}
}

// Busy reports whether a job is outstanding.
func (w *Worker) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pending != ""
}

// Elapsed returns how long the outstanding job has been running.
func (w *Worker) Elapsed() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == "" {
		return 0
	}
	return w.now().Sub(w.started)
}
