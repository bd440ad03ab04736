package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/prototypes/internal/application/handlers"
)

func newListCmd() *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List prompts",
		Long:  "Lists every prompt id with its description, grouped by dataset.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, dataset)
		},
	}

	cmd.Flags().StringVarP(&dataset, "dataset", "d", "", "Only list prompts of this dataset")

	return cmd
}

func runList(cmd *cobra.Command, dataset string) error {
	return withDeps(cmd, func(d *Deps) error {
		prompts, err := d.PromptHandler.List(dataset)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(prompts) == 0 {
			fmt.Fprintln(out, "No prompts found.")
			return nil
		}

		displayPrompts(out, prompts)
		return nil
	})
}

func displayPrompts(w io.Writer, prompts []handlers.Prompt) {
	current := ""
	for _, p := range prompts {
		if p.Dataset != current {
			if current != "" {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s:\n", p.Dataset)
			current = p.Dataset
		}
		fmt.Fprintf(w, "  %-*s %s\n", promptColumnWidth, p.ID(), p.Description)
	}
}
