package app

import (
	"context"
	"time"

	"github.com/dshills/vedit/internal/renderer/backend"
)

// Run initializes the terminal and runs the event loop until the user
// quits or ctx is cancelled.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return NewOperationError("init", "terminal", err)
	}
	defer app.backend.Shutdown()

	app.ctx = ctx
	app.width, app.height = app.backend.Size()
	app.log.Info("event loop started")

	events := make(chan backend.Event, 16)
	go app.pollEvents(ctx, events)

	return app.loop(ctx, events)
}

// pollEvents forwards terminal events until the backend shuts down.
func (app *Application) pollEvents(ctx context.Context, events chan<- backend.Event) {
	for {
		ev := app.backend.PollEvent()
		if ev.Type == backend.EventNone {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// loop processes events, reloads and rewrite results, redrawing after
// each step.
func (app *Application) loop(ctx context.Context, events <-chan backend.Event) error {
	ticker := time.NewTicker(app.tick)
	defer ticker.Stop()

	app.render()
	for {
		select {
		case <-ctx.Done():
			app.log.Info("event loop cancelled")
			return ctx.Err()

		case ev := <-events:
			app.handleEvent(ev)

		case cfg := <-app.reloads:
			app.applyConfig(cfg)

		case <-ticker.C:
			app.pollRewrite()
		}

		if app.editor.Quit() {
			app.log.Info("event loop stopped")
			return nil
		}
		app.render()
	}
}

// handleEvent dispatches one terminal event.
func (app *Application) handleEvent(ev backend.Event) {
	switch ev.Type {
	case backend.EventKey:
		app.handleKey(ev)
	case backend.EventResize:
		app.width, app.height = ev.Width, ev.Height
	}
}

// pollRewrite hands a finished rewrite to the editor.
func (app *Application) pollRewrite() {
	if app.worker == nil || app.help != nil {
		return
	}
	done, err := app.editor.PollProposal(app.worker)
	if !done {
		return
	}
	if err != nil {
		app.log.Warn("rewrite failed: %v", err)
		app.message = "Error: " + err.Error()
		return
	}
	app.focus = focusEditor
	app.message = "Review changes: a/r accept/reject, y apply, q cancel."
}
