// Package main is the entry point for the vedit editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dshills/vedit/internal/app"
	"github.com/dshills/vedit/internal/config"
	"github.com/dshills/vedit/internal/logging"
	"github.com/dshills/vedit/internal/renderer/backend"
	"github.com/dshills/vedit/internal/rewrite"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the command-line flags.
type options struct {
	configPath string
	logLevel   string
	debug      bool
	readOnly   bool
	model      string
	promptDir  string
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.debug {
		cfg.LogLevel = "debug"
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	log, err := logging.OpenFile(cfg.LogFile, level, "vedit")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer log.Close()

	worker, closeWorker, err := newWorker(cfg, opts.model, level, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeWorker()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{
		Path:      opts.file,
		Config:    cfg,
		Logger:    log,
		Backend:   term,
		Worker:    worker,
		PromptDir: opts.promptDir,
		ReadOnly:  opts.readOnly,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = config.Watch(ctx, opts.configPath, func(c *config.Config, err error) {
		if err != nil {
			log.Warn("config reload failed: %v", err)
			return
		}
		application.ApplyConfig(c)
	})
	if err != nil {
		log.Warn("config watch disabled: %v", err)
	}

	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newWorker builds the rewrite worker for the selected model. It returns a
// nil worker when no model is configured. The interaction log is written
// next to the main log as ai.log.
func newWorker(cfg *config.Config, modelID string, level logging.Level, log *logging.Logger) (*rewrite.Worker, func(), error) {
	noop := func() {}
	if len(cfg.Rewrite.Models) == 0 {
		if modelID != "" {
			return nil, noop, fmt.Errorf("%w: %q", config.ErrModelNotFound, modelID)
		}
		return nil, noop, nil
	}

	model, err := cfg.Model(modelID)
	if err != nil {
		return nil, noop, err
	}

	aiLog, err := logging.OpenFile(filepath.Join(filepath.Dir(cfg.LogFile), "ai.log"), level, "rewrite")
	if err != nil {
		return nil, noop, err
	}
	closeLog := func() { _ = aiLog.Close() }

	client, err := rewrite.NewClient(model, rewrite.WithLogger(aiLog))
	if err != nil {
		closeLog()
		return nil, noop, err
	}
	log.Info("rewrite model %s (%s)", model.ID, model.Provider)
	return rewrite.NewWorker(client, rewrite.WithWorkerLogger(log.WithComponent("rewrite"))), closeLog, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to configuration file (.toml or .yaml)")
	flag.StringVar(&opts.configPath, "c", config.DefaultPath(), "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&opts.debug, "d", false, "Enable debug logging (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.readOnly, "readonly", false, "Open the file in read-only mode")
	flag.BoolVar(&opts.readOnly, "R", false, "Open the file in read-only mode (shorthand)")
	flag.StringVar(&opts.model, "model", "", "Rewrite model id (default from config)")
	flag.StringVar(&opts.promptDir, "prompts", app.DefaultPromptDir, "Directory of prompt files")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vedit - text editor with virtual cursor and AI rewrites\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vedit [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vedit                       Open an empty buffer\n")
		fmt.Fprintf(os.Stderr, "  vedit notes.txt             Open a file\n")
		fmt.Fprintf(os.Stderr, "  vedit -R notes.txt          Open a file read-only\n")
		fmt.Fprintf(os.Stderr, "  vedit -model gpt notes.txt  Rewrite with the model \"gpt\"\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("vedit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.logLevel != "" {
		if _, ok := logging.ParseLevel(opts.logLevel); !ok {
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
			os.Exit(1)
		}
	}

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: only one file can be opened\n")
		os.Exit(1)
	}
	opts.file = flag.Arg(0)

	return opts
}
