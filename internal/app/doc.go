// Package app is the interactive host around the editing engine.
//
// An Application owns one terminal backend and one engine.Editor. It reads
// key events, routes them to the editor, the command line or a diff review,
// and redraws the screen after every step.
//
// # Screen Layout
//
//	row 0         diff banner (only while a rewrite is reviewed)
//	rows 1..h-3   text area, with an optional line-number gutter
//	row h-2       status line: file, modified, mode, cursor, undo position
//	row h-1       command line or the latest message
//
// # Focus
//
// Home switches between the text and the command line. Commands are run on
// Enter and recorded in a history browsed with Up and Down.
//
// # Rewrites
//
// The prompt command submits the selection (or the whole buffer) to a
// rewrite.Worker. The event loop polls the worker on a ticker; a finished
// rewrite opens a diff review in the editor.
//
// # Usage
//
//	term, err := backend.NewTerminal()
//	if err != nil {
//	    return err
//	}
//	application, err := app.New(app.Options{
//	    Path:    "notes.txt",
//	    Config:  cfg,
//	    Backend: term,
//	})
//	if err != nil {
//	    return err
//	}
//	return application.Run(ctx)
package app
