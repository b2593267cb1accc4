package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/praxis/internal/app"
	"github.com/alexanderramin/praxis/internal/cli"
	"github.com/alexanderramin/praxis/internal/config"
	"github.com/alexanderramin/praxis/internal/db"
	"github.com/alexanderramin/praxis/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	interactive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	logger, closeLog, err := newLogger(cfg, interactive())
	if err != nil {
		return err
	}
	defer closeLog()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	backend := app.New(database, app.Options{
		ExportDir: cfg.ExportDir,
		Logger:    logger,
		Observers: []service.UseCaseObserver{service.NewSlogUseCaseObserver(logger)},
	})

	a := &cli.App{
		Client:        backend.Client,
		Invoker:       backend.Router,
		Currency:      cfg.Currency,
		IsInteractive: interactive,
	}

	return cli.NewRootCmd(a).Execute()
}

// newLogger writes to the configured log file. Without one, logs go to
// stderr, except in a terminal where they would draw over the TUI.
func newLogger(cfg config.Config, interactive bool) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.LogFile == "" {
		var w io.Writer = os.Stderr
		if interactive {
			w = io.Discard
		}
		return slog.New(slog.NewTextHandler(w, opts)), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewJSONHandler(f, opts)), func() { f.Close() }, nil
}
