// Package gha normalizes GitHub Actions result documents: a workflow
// context object plus a mapping of step name to step result. Both arrive
// as whole JSON documents supplied by the invoking workflow.
package gha

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"jobsum/internal/report"
)

// successMarker is the exact outcome string GitHub Actions assigns to a
// passing step. Comparison is case-sensitive; anything else is a failure.
const successMarker = "success"

// payloadKey names the step output that carries an embedded comparison
// payload, a JSON document quoted with single quotes.
const payloadKey = "comparisons"

type contextDocument struct {
	Title *string        `json:"title"`
	Actor *string        `json:"actor"`
	Event *eventDocument `json:"event"`
}

type eventDocument struct {
	PullRequest *pullRequestDocument `json:"pull_request"`
	Action      *string              `json:"action"`
}

type pullRequestDocument struct {
	Head headDocument `json:"head"`
}

type headDocument struct {
	Ref string `json:"ref"`
}

type stepDocument struct {
	Outcome *string                    `json:"outcome"`
	Outputs map[string]json.RawMessage `json:"outputs"`
}

// Normalize converts the raw context and steps documents into the
// canonical report model. Entry order follows the order step keys appear
// in the steps document text, which a plain map decode would not keep.
func Normalize(contextData, stepsData []byte, log zerolog.Logger) (report.Report, error) {
	var ctx contextDocument
	if err := json.Unmarshal(contextData, &ctx); err != nil {
		return report.Report{}, fmt.Errorf("parse context document: %w", err)
	}
	if ctx.Title == nil || *ctx.Title == "" {
		return report.Report{}, errors.New("context document missing title")
	}

	rep := report.Report{
		Title:    *ctx.Title,
		Metadata: metadata(ctx),
		RawDump:  string(stepsData),
	}

	entries, err := decodeSteps(stepsData, log)
	if err != nil {
		return report.Report{}, err
	}
	rep.Entries = entries
	rep.Summary = report.Compute(entries)
	return rep, nil
}

// metadata collects the optional context fields that are present. The
// emission order is fixed regardless of input key order.
func metadata(ctx contextDocument) []report.Field {
	var fields []report.Field
	if ctx.Actor != nil {
		fields = append(fields, report.Field{Label: "Actor", Value: *ctx.Actor})
	}
	if ctx.Event != nil {
		if ctx.Event.PullRequest != nil && ctx.Event.PullRequest.Head.Ref != "" {
			fields = append(fields, report.Field{Label: "Branch", Value: ctx.Event.PullRequest.Head.Ref})
		}
		if ctx.Event.Action != nil {
			fields = append(fields, report.Field{Label: "Action", Value: *ctx.Event.Action})
		}
	}
	return fields
}

func decodeSteps(data []byte, log zerolog.Logger) ([]report.Entry, error) {
	entries := make([]report.Entry, 0)
	err := walkObject(data, func(name string, raw json.RawMessage) error {
		var step stepDocument
		if err := json.Unmarshal(raw, &step); err != nil {
			return fmt.Errorf("parse step %q: %w", name, err)
		}
		entry, err := normalizeStep(name, step, log)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func normalizeStep(name string, step stepDocument, log zerolog.Logger) (report.Entry, error) {
	if step.Outcome == nil {
		return report.Entry{}, fmt.Errorf("step %q missing outcome", name)
	}

	entry := report.Entry{
		Name:       name,
		RawOutcome: *step.Outcome,
		Outcome:    report.OutcomeFailure,
	}
	if *step.Outcome == successMarker {
		entry.Outcome = report.OutcomeSuccess
	}

	raw, ok := step.Outputs[payloadKey]
	if !ok {
		return entry, nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return report.Entry{}, fmt.Errorf("step %q: %w", name, &PayloadError{Err: fmt.Errorf("output %q is not a string: %w", payloadKey, err)})
	}
	details, err := ParsePayload(encoded, log)
	if err != nil {
		return report.Entry{}, fmt.Errorf("step %q: %w", name, err)
	}
	entry.Details = details
	return entry, nil
}

// walkObject streams the top-level keys of a JSON object in document
// order, handing each raw value to fn.
func walkObject(data []byte, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("document is not a JSON object")
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("parse document: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("parse value for %q: %w", key, err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	return nil
}
