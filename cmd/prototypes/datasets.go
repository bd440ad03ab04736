package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/prototypes/internal/application/handlers"
	"github.com/ersonp/prototypes/internal/infrastructure/render"
)

func newDatasetsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "Describe the datasets",
		Long:  "Shows each dataset with its record counts and number of prompts.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatasets(cmd, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, yaml, text; default from config)")

	return cmd
}

func runDatasets(cmd *cobra.Command, format string) error {
	ctx := cmd.Context()

	return withDeps(cmd, func(d *Deps) error {
		r, err := d.Renderer(format)
		if err != nil {
			return err
		}

		summaries, err := d.DatasetHandler.Handle(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if r.Format() == render.FormatText {
			displayDatasets(out, summaries)
			return nil
		}
		return r.Render(out, summaries)
	})
}

func displayDatasets(w io.Writer, summaries []handlers.DatasetSummary) {
	for _, s := range summaries {
		parts := make([]string, 0, len(s.Collections))
		for _, c := range s.Collections {
			parts = append(parts, fmt.Sprintf("%s=%d", c.Collection, c.Records))
		}
		fmt.Fprintf(w, "%-12s %4d records  %2d prompts  (%s)", s.Name, s.Records, s.Prompts, strings.Join(parts, ", "))
		if s.Source != "" {
			fmt.Fprintf(w, "  %s", s.Source)
		}
		fmt.Fprintln(w)
	}
}
