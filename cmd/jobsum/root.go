package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jobsum",
		Short:         "Jobsum renders CI result documents as markdown job summaries",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	persistent := cmd.PersistentFlags()
	persistent.String("format", "", "output format (markdown|json)")
	persistent.BoolP("verbose", "v", false, "log diagnostic detail to stderr")
	persistent.Bool("include-raw-dump", false, "append the raw result document to the report")
	persistent.Bool("annotate-inline", false, "annotate mismatching comparisons inside the table")

	cmd.AddCommand(newStepsCmd())
	cmd.AddCommand(newGtestCmd())

	return cmd
}
