package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"jobsum/internal/duration"
	"jobsum/internal/report"
)

// Options configure markdown rendering. Now is injectable so tests can
// pin the header timestamp; everything after the header is a pure
// projection of the report model.
type Options struct {
	IncludeRawDump bool
	AnnotateInline bool
	Now            func() time.Time
}

// Markdown renders a canonical report as GitHub-flavored markdown.
type Markdown struct {
	out  io.Writer
	opts Options
}

// NewMarkdown creates a Markdown renderer writing to out.
func NewMarkdown(out io.Writer, opts Options) *Markdown {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Markdown{out: out, opts: opts}
}

// Render writes the full report document in fixed block order: title,
// metadata, summary, results table with nested comparison rows, failure
// detail blocks, and optionally the raw source dump. Entry rows follow
// the model's insertion order; nothing is reordered, filtered, or
// deduplicated here.
func (m *Markdown) Render(rep report.Report) error {
	var buf bytes.Buffer

	timestamp := m.opts.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(&buf, "# %s Results (%s)\n\n", rep.Title, timestamp)

	if len(rep.Metadata) > 0 {
		for _, field := range rep.Metadata {
			fmt.Fprintf(&buf, "- **%s:** %s\n", field.Label, field.Value)
		}
		buf.WriteByte('\n')
	}

	m.writeSummary(&buf, rep.Summary)
	m.writeTable(&buf, rep.Entries)
	m.writeFailures(&buf, rep.Entries)

	if m.opts.IncludeRawDump && rep.RawDump != "" {
		fmt.Fprintf(&buf, "\n## Raw Results\n\n```json\n%s\n```\n", strings.TrimSpace(rep.RawDump))
	}

	_, err := buf.WriteTo(m.out)
	return err
}

func (m *Markdown) writeSummary(buf *bytes.Buffer, summary report.Summary) {
	buf.WriteString("## Summary\n\n")
	fmt.Fprintf(buf, "- Total Tests: %d\n", summary.Total)
	fmt.Fprintf(buf, "- Passed: %d\n", summary.Passed)
	fmt.Fprintf(buf, "- Failed: %d\n", summary.Failed)
	if summary.Extended {
		fmt.Fprintf(buf, "- Disabled: %d\n", summary.Disabled)
		fmt.Fprintf(buf, "- Errors: %d\n", summary.Errors)
		fmt.Fprintf(buf, "- Time: %s\n", duration.Format(summary.TimeMS))
	}
	buf.WriteByte('\n')
}

func (m *Markdown) writeTable(buf *bytes.Buffer, entries []report.Entry) {
	buf.WriteString("## Results\n\n")
	buf.WriteString("| Name | Status | Outcome | Duration |\n")
	buf.WriteString("|---|---|---|---|\n")

	for _, entry := range entries {
		fmt.Fprintf(buf, "| %s | %s | %s | %s |\n",
			escapeCell(entry.Name),
			statusGlyph(entry.Outcome == report.OutcomeSuccess),
			escapeCell(entry.RawOutcome),
			durationCell(entry.DurationMS),
		)
		for _, sub := range entry.Details {
			status := statusGlyph(sub.Matches)
			if m.opts.AnnotateInline && !sub.Matches {
				status += " mismatch"
			}
			fmt.Fprintf(buf, "| └ %s | %s | expected `%v` | reported `%v` |\n",
				escapeCell(sub.Label), status, sub.Expected, sub.Reported)
		}
	}
}

func (m *Markdown) writeFailures(buf *bytes.Buffer, entries []report.Entry) {
	for _, entry := range entries {
		if len(entry.Failures) == 0 {
			continue
		}
		fmt.Fprintf(buf, "\n### Failure Details: %s\n\n", entry.Name)
		for _, failure := range entry.Failures {
			fmt.Fprintf(buf, "```\n%s\n```\n", failure)
		}
	}
}

func statusGlyph(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}

func durationCell(ms *float64) string {
	if ms == nil {
		return ""
	}
	return duration.Format(*ms)
}

// escapeCell keeps user-supplied text from breaking table structure.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
