package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/prototypes/internal/application/handlers"
	"github.com/ersonp/prototypes/internal/infrastructure/config"
	"github.com/ersonp/prototypes/internal/infrastructure/fixtures"
	"github.com/ersonp/prototypes/internal/infrastructure/render"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed, the fixture loader stays internal.
type Deps struct {
	Config         *config.Config
	Logger         *slog.Logger
	PromptHandler  *handlers.PromptHandler
	DatasetHandler *handlers.DatasetHandler
}

// Renderer returns a renderer for format, falling back to the configured
// output format when format is empty.
func (d *Deps) Renderer(format string) (*render.Renderer, error) {
	if format == "" {
		format = d.Config.Output.Format
	}
	if !config.IsFormat(format) {
		return nil, fmt.Errorf("invalid format %q, valid formats: %v", format, config.Formats)
	}
	return render.New(format, d.Config.Output.Indent)
}

// withDeps loads config and builds dependencies, then calls the provided function.
func withDeps(cmd *cobra.Command, fn func(*Deps) error) error {
	logger := newLogger(cmd.ErrOrStderr())

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("loaded config",
		"path", config.ConfigFilePath(cwd),
		"exists", config.Exists(cwd),
		"datasets_dir", cfg.Datasets.Dir,
		"format", cfg.Output.Format,
	)

	loader := fixtures.NewLoader(cfg.DatasetsDir(cwd), logger)
	prompts := handlers.DefaultPrompts()

	deps := &Deps{
		Config:         cfg,
		Logger:         logger,
		PromptHandler:  handlers.NewPromptHandler(loader, prompts),
		DatasetHandler: handlers.NewDatasetHandler(loader, prompts),
	}

	return fn(deps)
}

// newLogger returns a debug text logger on w with --verbose, and a
// discarding logger otherwise.
func newLogger(w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// openOutput returns the writer for --output, or the command's stdout when
// path is empty. The returned close function is always non-nil.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFileMode)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}
