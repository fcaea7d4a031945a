// Package gtest normalizes GoogleTest JSON result dumps into the
// canonical report model.
package gtest

import (
	"encoding/json"
	"fmt"
	"strings"

	"jobsum/internal/duration"
	"jobsum/internal/report"
)

// statusRun is the status GoogleTest assigns to an executed test case.
const statusRun = "RUN"

type resultsDocument struct {
	Tests    int             `json:"tests"`
	Failures int             `json:"failures"`
	Disabled int             `json:"disabled"`
	Errors   int             `json:"errors"`
	Time     any             `json:"time"`
	Suites   []suiteDocument `json:"testsuites"`
}

type suiteDocument struct {
	Name  string         `json:"name"`
	Cases []caseDocument `json:"testsuite"`
}

type caseDocument struct {
	Name     string            `json:"name"`
	Status   string            `json:"status"`
	Time     any               `json:"time"`
	Failures []failureDocument `json:"failures"`
}

type failureDocument struct {
	Message *string `json:"message"`
	Type    *string `json:"type"`
}

// Normalize converts a GoogleTest JSON dump into the canonical report
// model. The label becomes the report title; aggregate counts come from
// the document's own top-level fields.
func Normalize(data []byte, label string) (report.Report, error) {
	var doc resultsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return report.Report{}, fmt.Errorf("parse results document: %w", err)
	}

	rep := report.Report{
		Title:   label,
		Entries: make([]report.Entry, 0),
		RawDump: string(data),
	}

	for _, suite := range doc.Suites {
		for _, tc := range suite.Cases {
			ms := duration.Parse(tc.Time)
			entry := report.Entry{
				Name:       suite.Name + "." + tc.Name,
				RawOutcome: tc.Status,
				Outcome:    report.OutcomeFailure,
				DurationMS: &ms,
			}
			if tc.Status == statusRun {
				entry.Outcome = report.OutcomeSuccess
			}
			if tc.Status != statusRun {
				for _, failure := range tc.Failures {
					entry.Failures = append(entry.Failures, formatFailure(failure))
				}
			}
			rep.Entries = append(rep.Entries, entry)
		}
	}

	rep.Summary = report.Summary{
		Total:    doc.Tests,
		Passed:   doc.Tests - doc.Failures,
		Failed:   doc.Failures,
		Disabled: doc.Disabled,
		Errors:   doc.Errors,
		TimeMS:   duration.Parse(doc.Time),
		Extended: true,
	}
	return rep, nil
}

// formatFailure joins a failure's message and type into one display
// string. Either field may be absent.
func formatFailure(f failureDocument) string {
	var parts []string
	if f.Message != nil {
		parts = append(parts, *f.Message)
	}
	if f.Type != nil {
		parts = append(parts, "Type: "+*f.Type)
	}
	return strings.Join(parts, "\n")
}
