package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/vedit/internal/engine"
	"github.com/dshills/vedit/internal/engine/search"
	"github.com/dshills/vedit/internal/engine/sorting"
	"github.com/dshills/vedit/internal/rewrite"
)

// commandFunc runs one command. args are the tokenized arguments, rest is
// the raw text after the command name and ignoreCase is set by a "/i"
// suffix.
type commandFunc func(app *Application, args []string, rest string, ignoreCase bool) error

// commands maps command names to their handlers.
var commands map[string]commandFunc

func init() {
	commands = map[string]commandFunc{
		"q":       cmdQuit,
		"quit":    cmdQuit,
		"s":       cmdSave,
		"save":    cmdSave,
		"w":       cmdWrite,
		"undo":    cmdUndo,
		"redo":    cmdRedo,
		"lnum":    cmdLineNumbers,
		"goto":    cmdGoto,
		"find":    cmdFind,
		"findb":   cmdFindBlock,
		"replace": cmdReplace,
		"sort":    cmdSort,
		"prompt":  cmdPrompt,
		"help":    cmdHelp,
	}
}

// execute runs a command line.
func (app *Application) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	name, suffix, _ := strings.Cut(name, "/")

	fn, ok := commands[name]
	if !ok || (suffix != "" && suffix != "i") {
		app.message = "Unknown command: " + line
		app.log.Debug("%v: %s", ErrUnknownCommand, line)
		return
	}

	args, err := tokenize(rest)
	if err == nil {
		app.log.Debug("command %s %q", name, args)
		err = fn(app, args, rest, suffix == "i")
	}
	if err != nil {
		app.fail(err)
	}
}

// tokenize splits s on spaces. Double quotes group words and a backslash
// escapes the next character inside quotes.
func tokenize(s string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inQuote bool
		escaped bool
		started bool
	)
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case inQuote && r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (r == ' ' || r == '\t'):
			if started {
				args = append(args, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, usage("unterminated quote")
	}
	if started {
		args = append(args, cur.String())
	}
	return args, nil
}

// ============================================================================
// File and Session Commands
// ============================================================================

// quit closes the help text, or exits.
func (app *Application) quit() {
	if app.closeHelp() {
		app.message = "Returned to document."
		return
	}
	app.requestQuit()
}

func cmdQuit(app *Application, _ []string, _ string, _ bool) error {
	app.quit()
	return nil
}

// runSave saves and reports the result.
func (app *Application) runSave(path string) {
	if err := app.save(path); err != nil {
		app.message = "Save failed: " + err.Error()
		return
	}
	app.message = "File saved."
}

func cmdSave(app *Application, _ []string, _ string, _ bool) error {
	app.runSave("")
	return nil
}

func cmdWrite(app *Application, args []string, _ string, _ bool) error {
	if len(args) != 1 {
		return usage("w <path>")
	}
	app.runSave(args[0])
	return nil
}

func cmdUndo(app *Application, _ []string, _ string, _ bool) error {
	app.undo()
	return nil
}

func cmdRedo(app *Application, _ []string, _ string, _ bool) error {
	app.redo()
	return nil
}

func cmdLineNumbers(app *Application, _ []string, _ string, _ bool) error {
	app.lineNumbers = !app.lineNumbers
	app.message = "Line numbers toggled."
	return nil
}

func cmdGoto(app *Application, args []string, _ string, _ bool) error {
	if len(args) != 1 {
		return usage("goto <line>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		app.message = "Invalid line number."
		return nil
	}
	if err := app.editor.GotoLine(n); err != nil {
		app.message = "Line number out of range."
		return nil
	}
	app.message = fmt.Sprintf("Jumped to line %d", n)
	return nil
}

func cmdHelp(app *Application, _ []string, _ string, _ bool) error {
	app.showHelp()
	app.message = "Help mode - use 'q' to return to document"
	return nil
}

// ============================================================================
// Search Commands
// ============================================================================

func cmdFind(app *Application, args []string, _ string, ignoreCase bool) error {
	return app.find(strings.Join(args, " "), engine.ScopeAll, !ignoreCase)
}

func cmdFindBlock(app *Application, args []string, _ string, ignoreCase bool) error {
	return app.find(strings.Join(args, " "), engine.ScopeBlock, !ignoreCase)
}

func (app *Application) find(target string, scope engine.Scope, caseSensitive bool) error {
	if target == "" {
		return usage("find <text>")
	}
	n, err := app.editor.Find(target, scope, caseSensitive)
	if errors.Is(err, engine.ErrNoMatch) {
		app.message = "No matches found."
		return nil
	}
	if err != nil {
		return err
	}
	mode := "case-sensitive"
	if !caseSensitive {
		mode = "case-insensitive"
	}
	app.message = fmt.Sprintf("Found %d matches for '%s' (%s)", n, target, mode)
	return nil
}

func cmdReplace(app *Application, args []string, _ string, ignoreCase bool) error {
	const form = "replace <all|line|block> <old> <new> [all]"
	if len(args) != 3 && len(args) != 4 {
		return usage(form)
	}
	all := len(args) == 4
	if all && args[3] != "all" {
		return usage(form)
	}
	scope, err := search.ParseScope(args[0])
	if err != nil {
		return err
	}

	n, err := app.editor.Replace(args[1], args[2], scope, all, !ignoreCase)
	switch {
	case errors.Is(err, engine.ErrNoMatch):
		app.message = "No matches found."
	case err != nil:
		return err
	case all:
		app.message = fmt.Sprintf("Replaced %d occurrences.", n)
	default:
		app.message = fmt.Sprintf("Found %d matches. Press F1 to replace next.", n)
	}
	return nil
}

// ============================================================================
// Sort and Rewrite Commands
// ============================================================================

func cmdSort(app *Application, args []string, _ string, _ bool) error {
	keys, err := sorting.ParseKeys(args)
	if err != nil {
		return err
	}
	if app.editor.Selection() != nil {
		if err := app.editor.SortSelection(keys); err != nil {
			return err
		}
		app.message = "Selection sorted."
		return nil
	}
	app.editor.SortAll(keys)
	app.message = "Buffer sorted."
	return nil
}

func cmdPrompt(app *Application, _ []string, rest string, _ bool) error {
	prompt, err := rewrite.ParseArg(app.promptDir, rest)
	if errors.Is(err, rewrite.ErrEmptyInstruction) {
		app.message = "Prompt command requires text or filename."
		return nil
	}
	if err != nil {
		return err
	}
	if app.worker == nil {
		return ErrNoRewriter
	}
	if app.editor.DiffActive() {
		return engine.ErrDiffActive
	}

	text, span := app.editor.RewriteTarget()
	id, err := app.worker.Submit(app.ctx, rewrite.Request{Prompt: prompt, Text: text, Span: span})
	if errors.Is(err, rewrite.ErrBusy) {
		app.message = "A rewrite is already in progress."
		return nil
	}
	if err != nil {
		return err
	}
	app.log.Info("rewrite %s submitted", id)
	app.message = "Rewrite requested..."
	return nil
}
