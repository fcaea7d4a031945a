package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"jobsum/internal/config"
	"jobsum/internal/output"
	"jobsum/internal/report"
)

// now is the renderer clock; tests pin it to keep golden output stable.
var now = time.Now

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	root, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("determine working directory: %w", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return config.Config{}, err
	}

	flags, err := gatherFlags(cmd)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyFlags(&cfg, flags)

	return cfg, nil
}

func renderReport(out io.Writer, cfg config.Config, rep report.Report) error {
	switch strings.ToLower(cfg.Format) {
	case config.FormatMarkdown:
		renderer := output.NewMarkdown(out, output.Options{
			IncludeRawDump: cfg.IncludeRawDump,
			AnnotateInline: cfg.AnnotateInline,
			Now:            now,
		})
		return renderer.Render(rep)
	case config.FormatJSON:
		return output.NewJSON(out).Render(rep)
	default:
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}
}

// verdictErr turns the folded verdict into the process exit signal. It
// runs only after the report has been rendered and flushed; a failing
// verdict never truncates the report.
func verdictErr(rep report.Report, log zerolog.Logger) error {
	if report.Verdict(rep.Entries) == report.OutcomeSuccess {
		log.Debug().Msg("verdict: success")
		return nil
	}
	log.Debug().Msg("verdict: failure")
	return errors.New("one or more tests failed")
}
