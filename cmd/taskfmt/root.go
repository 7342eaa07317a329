package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for taskfmt.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taskfmt",
		Short: "Normalize and tabulate network automation results",
		Long: `taskfmt normalizes per-host, per-task results produced by a network
automation run. It serializes them into a nested mapping or a list of
records, and renders flat records as text or Markdown tables.

Input files are JSON or YAML. A top-level mapping is a result collection
(host -> list of task outcomes); a top-level list is a list of flat records.
Use - to read from standard input.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewSerializeCmd())
	cmd.AddCommand(NewTableCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
