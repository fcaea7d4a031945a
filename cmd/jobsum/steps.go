package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jobsum/internal/inputs"
	"jobsum/internal/logging"
	"jobsum/internal/source/gha"
)

func newStepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps <output> <context.json> <steps.json>",
		Short: "Render a workflow step summary to a markdown file",
		Args:  cobra.ExactArgs(3),
		RunE:  runSteps,
	}
}

func runSteps(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New(cmd.ErrOrStderr(), cfg.Verbose)

	if _, err := inputs.Resolve(args[1], args[2]); err != nil {
		return err
	}
	contextData, err := inputs.Read(args[1])
	if err != nil {
		return err
	}
	stepsData, err := inputs.Read(args[2])
	if err != nil {
		return err
	}
	log.Debug().Str("context", args[1]).Str("steps", args[2]).Msg("loaded input documents")

	rep, err := gha.Normalize(contextData, stepsData, log)
	if err != nil {
		return err
	}
	log.Debug().Int("entries", len(rep.Entries)).Msg("normalized steps document")

	// Normalization happens before the output file is created so a
	// structural failure leaves no partial report behind.
	out, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create output %q: %w", args[0], err)
	}
	if err := renderReport(out, cfg, rep); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("flush output %q: %w", args[0], err)
	}

	return verdictErr(rep, log)
}
