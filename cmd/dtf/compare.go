package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emt/dtf/pkg/diff"
	"github.com/emt/dtf/pkg/parser"
	"github.com/emt/dtf/pkg/renderer"
	"github.com/emt/dtf/pkg/session"
)

var compareCmd = &cobra.Command{
	Use:   "compare <file-a> <file-b>",
	Short: "Compare two documents and report their differences",
	Long: `Compares two JSON or YAML documents and reports the enabled
difference categories. At least one of --keys, --types, --values or
--arrays must be given.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

var (
	keyDiffs       bool
	typeDiffs      bool
	valueDiffs     bool
	arrayDiffs     bool
	arraySameOrder bool
	outputFile     string
	format         string
)

func init() {
	compareCmd.Flags().BoolVarP(&keyDiffs, "keys", "k", false, "Check for key differences")
	compareCmd.Flags().BoolVarP(&typeDiffs, "types", "t", false, "Check for type differences")
	compareCmd.Flags().BoolVarP(&valueDiffs, "values", "v", false, "Check for value differences")
	compareCmd.Flags().BoolVarP(&arrayDiffs, "arrays", "a", false, "Check for array differences")
	compareCmd.Flags().BoolVarP(&arraySameOrder, "array-same-order", "o", false,
		"Compare arrays index by index instead of as sets")
	compareCmd.Flags().StringVarP(&outputFile, "output", "w", "",
		"Save the results to a JSON session file instead of rendering")
	compareCmd.Flags().StringVar(&format, "format", "table", "Output format (table, json, html)")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	if !keyDiffs && !typeDiffs && !valueDiffs && !arrayDiffs {
		return fmt.Errorf("at least one of --keys, --types, --values, --arrays is required")
	}

	fileA, fileB := args[0], args[1]

	dataA, err := parser.LoadFile(fileA)
	if err != nil {
		return err
	}
	dataB, err := parser.LoadFile(fileB)
	if err != nil {
		return err
	}

	ctx := diff.NewWorkingContext(fileA, fileB, diff.Config{
		ArraySameOrder: arraySameOrder,
		CheckKeys:      keyDiffs,
		CheckTypes:     typeDiffs,
		CheckValues:    valueDiffs,
		CheckArrays:    arrayDiffs,
	})

	result := diff.Collect(dataA, dataB, ctx)

	if outputFile != "" {
		if err := session.Save(outputFile, session.New(result, ctx)); err != nil {
			return err
		}
		fmt.Printf("Results written to %s\n", outputFile)
	} else {
		output, err := renderer.New(ctx).Format(result, format)
		if err != nil {
			return err
		}
		fmt.Print(output)
	}

	fmt.Fprintf(os.Stderr, "%s\n", diff.CollectStats(result).Summary())

	return nil
}
