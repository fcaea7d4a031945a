package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jobsum/internal/config"
)

func gatherFlags(cmd *cobra.Command) (config.FlagValues, error) {
	flags := cmd.Flags()
	var values config.FlagValues

	if flags.Changed("format") {
		v, err := flags.GetString("format")
		if err != nil {
			return values, fmt.Errorf("parse --format: %w", err)
		}
		values.Format = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("verbose") {
		v, err := flags.GetBool("verbose")
		if err != nil {
			return values, fmt.Errorf("parse --verbose: %w", err)
		}
		values.Verbose = config.BoolFlag{Value: v, Set: true}
	}

	if flags.Changed("include-raw-dump") {
		v, err := flags.GetBool("include-raw-dump")
		if err != nil {
			return values, fmt.Errorf("parse --include-raw-dump: %w", err)
		}
		values.IncludeRawDump = config.BoolFlag{Value: v, Set: true}
	}

	if flags.Changed("annotate-inline") {
		v, err := flags.GetBool("annotate-inline")
		if err != nil {
			return values, fmt.Errorf("parse --annotate-inline: %w", err)
		}
		values.AnnotateInline = config.BoolFlag{Value: v, Set: true}
	}

	return values, nil
}
