package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/prototypes/internal/application/handlers"
	"github.com/ersonp/prototypes/internal/infrastructure/render"
)

type runFlags struct {
	all     bool
	dataset string
	format  string
	output  string
}

func newRunCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run [prompt-id...]",
		Short: "Run prompts",
		Long: `Runs prompts against the datasets and prints their results.

Prompt ids have the form dataset.promptName (see "prototypes list").
With --all every prompt runs; with --dataset every prompt of one dataset runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.all, "all", "a", false, "Run every prompt")
	cmd.Flags().StringVarP(&flags.dataset, "dataset", "d", "", "Run every prompt of this dataset")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format (json, yaml, text; default from config)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runRun(cmd *cobra.Command, args []string, flags runFlags) error {
	batch := flags.all || flags.dataset != ""
	switch {
	case batch && len(args) > 0:
		return errors.New("prompt ids cannot be combined with --all or --dataset")
	case flags.all && flags.dataset != "":
		return errors.New("--all and --dataset are mutually exclusive")
	case !batch && len(args) == 0:
		return errors.New("at least one prompt id is required (or use --all / --dataset)")
	}

	ctx := cmd.Context()

	return withDeps(cmd, func(d *Deps) error {
		r, err := d.Renderer(flags.format)
		if err != nil {
			return err
		}

		var results []handlers.PromptResult
		switch {
		case batch:
			results, err = d.PromptHandler.HandleAll(ctx, flags.dataset)
		case len(args) == 1:
			var result *handlers.PromptResult
			result, err = d.PromptHandler.Handle(ctx, args[0])
			if result != nil {
				results = []handlers.PromptResult{*result}
			}
		default:
			results, err = d.PromptHandler.HandleMany(ctx, args)
		}
		if err != nil {
			return err
		}
		d.Logger.Debug("ran prompts", "count", len(results))

		w, closeOutput, err := openOutput(cmd, flags.output)
		if err != nil {
			return err
		}

		if err := writeResults(w, r, results, batch); err != nil {
			_ = closeOutput()
			return err
		}
		if err := closeOutput(); err != nil {
			return fmt.Errorf("closing output file: %w", err)
		}

		return failures(results)
	})
}

// writeResults renders a single prompt's bare result, or every result with
// its prompt id.
func writeResults(w io.Writer, r *render.Renderer, results []handlers.PromptResult, batch bool) error {
	if !batch && len(results) == 1 {
		return r.Render(w, results[0].Result)
	}

	if r.Format() != render.FormatText {
		return r.Render(w, results)
	}

	for i, res := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "== %s: %s\n", res.Prompt, res.Description); err != nil {
			return err
		}
		if res.Err != nil {
			if _, err := fmt.Fprintf(w, "error: %s\n", res.Error); err != nil {
				return err
			}
			continue
		}
		if err := r.Render(w, res.Result); err != nil {
			return fmt.Errorf("rendering %s: %w", res.Prompt, err)
		}
	}
	return nil
}

func failures(results []handlers.PromptResult) error {
	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Prompt, res.Err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d prompts failed: %w", len(errs), len(results), errors.Join(errs...))
}
