package app

import (
	"errors"
	"fmt"

	"github.com/dshills/vedit/internal/engine"
	"github.com/dshills/vedit/internal/renderer/backend"
)

// handleKey routes a key event to the active prompt, the command line, the
// diff review or the editor.
func (app *Application) handleKey(ev backend.Event) {
	switch {
	case app.prompt != promptNone:
		app.handlePromptKey(ev)
	case app.focus == focusCommand:
		app.handleCommandKey(ev)
	case app.editor.DiffActive():
		app.message = ""
		app.handleDiffKey(ev)
	default:
		app.message = ""
		app.handleEditorKey(ev)
	}
}

// handlePromptKey answers the pending prompt.
func (app *Application) handlePromptKey(ev backend.Event) {
	kind := app.prompt
	app.prompt = promptNone
	app.message = ""

	switch kind {
	case promptQuit:
		if ev.Key == backend.KeyRune && (ev.Rune == 'y' || ev.Rune == 'Y') {
			app.log.Info("quit without saving")
			app.editor.RequestQuit()
		}

	case promptFill:
		if ev.Key != backend.KeyRune {
			return
		}
		if err := app.editor.FillSelection(ev.Rune); err != nil {
			app.fail(err)
			return
		}
		app.message = "Selection filled."
	}
}

// handleCommandKey edits the command line.
func (app *Application) handleCommandKey(ev backend.Event) {
	switch ev.Key {
	case backend.KeyEnter:
		line := app.cmd.Text()
		app.cmd.Commit(line)
		app.cmd.Clear()
		app.focus = focusEditor
		app.execute(line)
	case backend.KeyEscape:
		app.cmd.Clear()
		app.focus = focusEditor
	case backend.KeyHome:
		app.focus = focusEditor
	case backend.KeyUp:
		app.cmd.Up()
	case backend.KeyDown:
		app.cmd.Down()
	case backend.KeyLeft:
		app.cmd.Left()
	case backend.KeyRight:
		app.cmd.Right()
	case backend.KeyBackspace:
		app.cmd.Backspace()
	case backend.KeyDelete:
		app.cmd.Delete()
	case backend.KeyRune:
		app.cmd.Insert(ev.Rune, false)
	}
}

// handleDiffKey drives a diff review.
func (app *Application) handleDiffKey(ev backend.Event) {
	var err error
	switch ev.Key {
	case backend.KeyRune:
		switch ev.Rune {
		case 'a':
			if err = app.editor.AcceptCurrentHunk(); err == nil {
				app.advanceHunk("Hunk accepted.")
			}
		case 'A':
			if err = app.editor.AcceptAllHunks(); err == nil {
				app.message = "All hunks accepted."
			}
		case 'r':
			if err = app.editor.RejectCurrentHunk(); err == nil {
				app.advanceHunk("Hunk rejected.")
			}
		case 'R':
			if err = app.editor.RejectAllHunks(); err == nil {
				app.message = "All hunks rejected."
			}
		case 'n', 'N':
			var moved bool
			if moved, err = app.editor.NextHunk(); err == nil && !moved {
				app.message = "Last hunk."
			}
		case 'p', 'P':
			var moved bool
			if moved, err = app.editor.PrevHunk(); err == nil && !moved {
				app.message = "First hunk."
			}
		case 'y':
			if err = app.editor.ApplyDiffChanges(); err == nil {
				app.log.Info("rewrite applied")
				app.message = "Changes applied successfully."
			}
		case 'q':
			if err = app.editor.CancelDiff(); err == nil {
				app.log.Info("rewrite cancelled")
				app.message = "Changes cancelled."
			}
		}
	case backend.KeyEscape:
		if err = app.editor.CancelDiff(); err == nil {
			app.message = "Changes cancelled."
		}
	case backend.KeyHome:
		app.focus = focusCommand
	default:
		app.moveKey(ev)
	}
	if err != nil {
		app.fail(err)
	}
}

// advanceHunk moves to the next hunk after a decision on the current one.
func (app *Application) advanceHunk(msg string) {
	moved, err := app.editor.NextHunk()
	if err != nil {
		app.fail(err)
		return
	}
	if !moved && app.editor.AllHunksAccepted() {
		msg += " All hunks accepted; press y to apply."
	}
	app.message = msg
}

// moveKey handles the navigation keys shared by the editor and the diff
// review. It reports whether ev was one of them.
func (app *Application) moveKey(ev backend.Event) bool {
	switch ev.Key {
	case backend.KeyUp:
		app.editor.MoveCursor(0, -1)
	case backend.KeyDown:
		app.editor.MoveCursor(0, 1)
	case backend.KeyLeft:
		app.editor.MoveCursor(-1, 0)
	case backend.KeyRight:
		app.editor.MoveCursor(1, 0)
	case backend.KeyPageUp:
		app.editor.PageUp()
	case backend.KeyPageDown:
		app.editor.PageDown()
	case backend.KeyEnd:
		app.editor.End()
	default:
		return false
	}
	return true
}

// handleEditorKey edits the buffer.
func (app *Application) handleEditorKey(ev backend.Event) {
	if app.moveKey(ev) {
		return
	}

	e := app.editor
	switch ev.Key {
	case backend.KeyRune:
		e.TypeChar(ev.Rune)
	case backend.KeyEnter:
		e.InsertNewline()
	case backend.KeyTab:
		e.InsertTab()
	case backend.KeyBackspace:
		e.Backspace()
	case backend.KeyDelete:
		e.DeleteChar()
	case backend.KeyInsert:
		e.ToggleOverwrite()
	case backend.KeyHome:
		app.focus = focusCommand
	case backend.KeyEscape:
		e.Deselect()
		e.ClearSearch()

	case backend.KeyCtrlZ:
		app.undo()
	case backend.KeyCtrlY:
		app.redo()

	case backend.KeyCtrlL:
		e.SelectLine()
	case backend.KeyCtrlB:
		e.SelectBlock()
	case backend.KeyCtrlF:
		if e.Selection() == nil {
			app.fail(engine.ErrNoSelection)
			return
		}
		app.prompt = promptFill
		app.message = "Enter character to fill selection:"
	case backend.KeyF7:
		if err := e.MoveBlockLeft(); err != nil {
			app.fail(err)
		}
	case backend.KeyF8:
		if err := e.MoveBlockRight(); err != nil {
			app.fail(err)
		}

	case backend.KeyCtrlN:
		if _, err := e.FindNext(); err != nil {
			app.message = "No more matches or no search active."
			return
		}
		app.message = "Moved to next match."
	case backend.KeyF1:
		app.replaceNext()

	case backend.KeyCtrlS:
		app.runSave("")
	case backend.KeyCtrlQ, backend.KeyCtrlC:
		app.quit()
	}
}

func (app *Application) undo() {
	if err := app.editor.Undo(); err != nil {
		app.message = "Nothing to undo."
		return
	}
	app.message = "Undid last change."
}

func (app *Application) redo() {
	if err := app.editor.Redo(); err != nil {
		app.message = "Nothing to redo."
		return
	}
	app.message = "Redid last change."
}

func (app *Application) replaceNext() {
	left, err := app.editor.ReplaceNext()
	switch {
	case errors.Is(err, engine.ErrNotReplacing):
		app.message = "No replacement in progress."
	case err != nil:
		app.fail(err)
	case left == 0:
		app.message = "Replaced. No more matches."
	default:
		app.message = fmt.Sprintf("Replaced. %d matches left.", left)
	}
}

// fail shows err on the command line.
func (app *Application) fail(err error) {
	app.log.Debug("%v", err)
	app.message = "Error: " + err.Error()
}
