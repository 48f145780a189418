package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emt/dtf/pkg/renderer"
	"github.com/emt/dtf/pkg/session"
)

var replayCmd = &cobra.Command{
	Use:   "replay <session-file>",
	Short: "Render a previously saved comparison without recomputation",
	Long: `Reads a session file written by 'compare --output' and renders
the stored differences. File names, category selection and ordering mode
come from the saved configuration.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

var replayFormat string

func init() {
	replayCmd.Flags().StringVar(&replayFormat, "format", "table", "Output format (table, json, html)")

	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	saved, err := session.Load(args[0])
	if err != nil {
		return err
	}

	output, err := renderer.New(saved.WorkingContext()).Format(saved.Result(), replayFormat)
	if err != nil {
		return err
	}
	fmt.Print(output)

	return nil
}
