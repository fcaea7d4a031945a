// Package logging configures the diagnostic logger. Diagnostics go to
// stderr only; the report itself owns stdout and the output file.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console logger writing to w. Verbose selects debug level,
// otherwise info.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}
