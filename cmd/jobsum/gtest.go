package main

import (
	"github.com/spf13/cobra"

	"jobsum/internal/inputs"
	"jobsum/internal/logging"
	"jobsum/internal/source/gtest"
)

func newGtestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gtest <context> <results.json>",
		Short: "Render GoogleTest JSON results to stdout",
		Args:  cobra.ExactArgs(2),
		RunE:  runGtest,
	}
}

func runGtest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New(cmd.ErrOrStderr(), cfg.Verbose)

	if _, err := inputs.Resolve(args[1]); err != nil {
		return err
	}
	data, err := inputs.Read(args[1])
	if err != nil {
		return err
	}

	rep, err := gtest.Normalize(data, args[0])
	if err != nil {
		return err
	}
	log.Debug().Int("entries", len(rep.Entries)).Msg("normalized results document")

	if err := renderReport(cmd.OutOrStdout(), cfg, rep); err != nil {
		return err
	}

	return verdictErr(rep, log)
}
