package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dtf",
	Short: "Find the difference in your data structures",
	Long: `dtf compares two JSON or YAML documents and classifies every
discrepancy as a key, type, value or array difference, rendered as
terminal tables or saved for later replay.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
