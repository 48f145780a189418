package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emt/dtf/pkg/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a document and dump its normalized form",
	Long: `Loads a JSON or YAML document and prints the normalized value
model as indented JSON. Useful for checking what the comparison engine
will actually see.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	doc, err := parser.LoadFile(args[0])
	if err != nil {
		return err
	}

	output, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	fmt.Println(string(output))
	return nil
}
