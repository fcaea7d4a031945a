package report

import "github.com/google/go-cmp/cmp"

// Outcome classifies a single entry as passing or failing. There is
// deliberately no third state: anything that is not an exact success
// marker counts as a failure.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Field is one labeled metadata line rendered beneath the report title.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SubResult is a nested expected/reported comparison extracted from an
// entry's free-form output payload.
type SubResult struct {
	Label    string `json:"label"`
	Expected any    `json:"expected"`
	Reported any    `json:"reported"`
	Matches  bool   `json:"matches"`
}

// NewSubResult builds a SubResult with Matches recomputed by structural
// equality. Match flags carried by the source are never trusted.
func NewSubResult(label string, expected, reported any) SubResult {
	return SubResult{
		Label:    label,
		Expected: expected,
		Reported: reported,
		Matches:  cmp.Equal(expected, reported),
	}
}

// Entry is one named unit of CI work: a workflow step or a test case.
type Entry struct {
	Name       string      `json:"name"`
	Outcome    Outcome     `json:"outcome"`
	RawOutcome string      `json:"raw_outcome"`
	DurationMS *float64    `json:"duration_ms,omitempty"`
	Details    []SubResult `json:"details,omitempty"`
	Failures   []string    `json:"failures,omitempty"`
}

// Summary aggregates entry counts for the report header. Extended marks
// summaries whose counts came from the source document itself and carry
// the additional disabled/error/time fields.
type Summary struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Disabled int     `json:"disabled,omitempty"`
	Errors   int     `json:"errors,omitempty"`
	TimeMS   float64 `json:"time_ms,omitempty"`
	Extended bool    `json:"-"`
}

// Compute derives a summary from the entries themselves, used when the
// source document carries no aggregate counts of its own.
func Compute(entries []Entry) Summary {
	summary := Summary{Total: len(entries)}
	for _, entry := range entries {
		if entry.Outcome == OutcomeSuccess {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}
	return summary
}

// Verdict folds every entry outcome into a single overall judgment. An
// empty entry set is vacuously successful.
func Verdict(entries []Entry) Outcome {
	for _, entry := range entries {
		if entry.Outcome != OutcomeSuccess {
			return OutcomeFailure
		}
	}
	return OutcomeSuccess
}

// Report is the canonical, renderer-agnostic model of one run's results.
// A normalizer builds it in a single pass; it is read-only afterwards.
type Report struct {
	Title    string  `json:"title"`
	Metadata []Field `json:"metadata,omitempty"`
	Entries  []Entry `json:"entries"`
	Summary  Summary `json:"summary"`
	RawDump  string  `json:"-"`
}
