package cmd

import (
	"github.com/spf13/cobra"

	"jsonlscope/internal/adapters/report"
)

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Display the field structure tree",
	Long: `Display every field path seen in the file as a tree,
in order of first appearance.

Example:
  jsonlscope tree events.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyze(cmd, args[0], (*report.Renderer).Structure)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Display file statistics",
	Long: `Display the file size and the number of total, valid, blank
and invalid lines.

Example:
  jsonlscope stats events.jsonl.gz`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyze(cmd, args[0], (*report.Renderer).Statistics)
	},
}

var emptyCmd = &cobra.Command{
	Use:   "empty <file>",
	Short: "Display fields seen without a value",
	Long: `Count how many times each field held null, "", [] or {}.
Fields are grouped by name regardless of nesting depth.

Example:
  jsonlscope empty events.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyze(cmd, args[0], (*report.Renderer).EmptyFields)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(emptyCmd)
}
