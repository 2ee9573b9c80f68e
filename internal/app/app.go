package app

import (
	"context"
	_ "embed"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/vedit/internal/config"
	"github.com/dshills/vedit/internal/engine"
	"github.com/dshills/vedit/internal/logging"
	"github.com/dshills/vedit/internal/renderer/backend"
	"github.com/dshills/vedit/internal/rewrite"
)

// DefaultTickInterval is how often the event loop checks for a finished
// rewrite and refreshes the elapsed-time display.
const DefaultTickInterval = 200 * time.Millisecond

// DefaultPromptDir is where prompt files are looked up.
const DefaultPromptDir = "prompts"

//go:embed help.txt
var defaultHelpText string

// Options configures the application.
type Options struct {
	// Path is the file to open. Empty opens a scratch buffer.
	Path string

	// Config is the loaded configuration. Nil uses config.Default().
	Config *config.Config

	// Logger receives application logs. Nil discards them.
	Logger *logging.Logger

	// Backend is the terminal. Required.
	Backend backend.Backend

	// Worker runs rewrite requests. Nil disables the prompt command.
	Worker *rewrite.Worker

	// PromptDir is searched for prompt files.
	PromptDir string

	// HelpText replaces the built-in help.
	HelpText string

	// ReadOnly opens the file without allowing edits.
	ReadOnly bool

	// TickInterval overrides DefaultTickInterval.
	TickInterval time.Duration
}

type focus int

const (
	focusEditor focus = iota
	focusCommand
)

type promptKind int

const (
	promptNone promptKind = iota
	promptQuit
	promptFill
)

// helpState holds the document set aside while help is shown.
type helpState struct {
	editor *engine.Editor
	doc    *Document
}

// Application is the editor host: it owns the terminal, routes keys and
// commands to the engine and draws the screen.
type Application struct {
	doc     *Document
	editor  *engine.Editor
	backend backend.Backend
	cfg     *config.Config
	log     *logging.Logger
	worker  *rewrite.Worker

	promptDir string
	helpText  string
	tick      time.Duration

	// UI state
	focus       focus
	prompt      promptKind
	cmd         *CommandLine
	message     string
	lineNumbers bool
	help        *helpState
	width       int
	height      int

	// ctx is the context of the running loop, used for rewrite requests.
	ctx context.Context

	reloads chan *config.Config
	running atomic.Bool
	mu      sync.Mutex
}

// New creates an application for opts.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, ErrNoBackend
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Null()
	}

	doc, content, err := OpenDocument(opts.Path)
	if err != nil {
		return nil, err
	}

	app := &Application{
		doc:         doc,
		backend:     opts.Backend,
		cfg:         cfg,
		log:         log.WithComponent("app"),
		worker:      opts.Worker,
		promptDir:   opts.PromptDir,
		helpText:    opts.HelpText,
		tick:        opts.TickInterval,
		cmd:         NewCommandLine(),
		lineNumbers: cfg.ShowLineNumbers,
		ctx:         context.Background(),
		reloads:     make(chan *config.Config, 1),
	}
	if app.promptDir == "" {
		app.promptDir = DefaultPromptDir
	}
	if app.helpText == "" {
		app.helpText = defaultHelpText
	}
	if app.tick <= 0 {
		app.tick = DefaultTickInterval
	}

	app.width, app.height = opts.Backend.Size()
	editorOpts := app.editorOptions()
	if opts.ReadOnly {
		editorOpts = append(editorOpts, engine.WithReadOnly())
	}
	app.editor = engine.New(content, editorOpts...)

	if doc.New {
		app.message = "New file."
	}
	app.log.Info("opened %s", doc.Name)
	return app, nil
}

// editorOptions returns the engine options derived from the configuration.
func (app *Application) editorOptions() []engine.Option {
	w, h := app.textArea()
	return []engine.Option{
		engine.WithTabWidth(app.cfg.TabWidth),
		engine.WithVirtualCursor(app.cfg.VirtualCursor),
		engine.WithViewport(w, h),
	}
}

// Editor returns the active editor.
func (app *Application) Editor() *engine.Editor {
	return app.editor
}

// Document returns the open document.
func (app *Application) Document() *Document {
	return app.doc
}

// Message returns the message shown on the command line.
func (app *Application) Message() string {
	return app.message
}

// IsRunning reports whether the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// ApplyConfig queues a reloaded configuration for the event loop.
// It is safe to call from any goroutine; a newer config replaces one not
// yet applied.
func (app *Application) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	app.mu.Lock()
	defer app.mu.Unlock()
	select {
	case <-app.reloads:
	default:
	}
	app.reloads <- cfg
}

// applyConfig installs cfg. Settings fixed at editor creation, such as
// the tab width, take effect for the next document.
func (app *Application) applyConfig(cfg *config.Config) {
	app.cfg = cfg
	app.lineNumbers = cfg.ShowLineNumbers
	if level, ok := logging.ParseLevel(cfg.LogLevel); ok {
		app.log.SetLevel(level)
	}
	app.message = "Configuration reloaded."
	app.log.Info("configuration reloaded")
}

// save writes the buffer to path, or to the document's path when path is
// empty.
func (app *Application) save(path string) error {
	if app.help != nil {
		return NewOperationError("save", "", ErrReadOnly)
	}
	var err error
	if path == "" {
		err = app.doc.Save(app.editor.Text())
	} else {
		err = app.doc.SaveAs(path, app.editor.Text())
	}
	if err != nil {
		app.log.Error("save failed: %v", err)
		return err
	}
	app.editor.MarkSaved()
	app.log.Info("saved %s", app.doc.Path)
	return nil
}

// showHelp sets the document aside and shows the help text read-only.
func (app *Application) showHelp() {
	if app.help != nil {
		return
	}
	app.help = &helpState{editor: app.editor, doc: app.doc}
	opts := append(app.editorOptions(), engine.WithReadOnly())
	app.editor = engine.New(app.helpText, opts...)
	app.doc = &Document{Name: "Help"}
}

// closeHelp brings back the document set aside by showHelp.
func (app *Application) closeHelp() bool {
	if app.help == nil {
		return false
	}
	app.editor = app.help.editor
	app.doc = app.help.doc
	app.help = nil
	return true
}

// requestQuit exits, asking first when there are unsaved changes.
func (app *Application) requestQuit() {
	if app.editor.Modified() {
		app.prompt = promptQuit
		app.message = "Changes have been made. Abort? (y/n)"
		return
	}
	app.editor.RequestQuit()
}
