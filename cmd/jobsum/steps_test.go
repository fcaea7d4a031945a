package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"jobsum/internal/report"
)

func pinClock(t *testing.T) {
	t.Helper()
	restore := now
	now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = restore })
}

func readGolden(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %q: %v", path, err)
	}
	return string(data)
}

func TestStepsCommandGolden(t *testing.T) {
	pinClock(t)

	outPath := filepath.Join(t.TempDir(), "summary.md")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"steps", outPath, "testdata/context.json", "testdata/steps.json"})

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	err := cmd.Execute()
	if err == nil || err.Error() != "one or more tests failed" {
		t.Fatalf("expected verdict error, got %v", err)
	}

	got, readErr := os.ReadFile(outPath)
	if readErr != nil {
		t.Fatalf("read report: %v", readErr)
	}
	want := readGolden(t, filepath.Join("testdata", "golden", "steps_basic.md"))
	if string(got) != want {
		t.Fatalf("unexpected report:\n--- want\n%s\n--- got\n%s", want, got)
	}
}

func TestStepsCommandEmptyReport(t *testing.T) {
	pinClock(t)

	outPath := filepath.Join(t.TempDir(), "summary.md")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"steps", outPath, "testdata/context_minimal.json", "testdata/steps_empty.json"})

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("empty report aggregates to success, got %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	want := readGolden(t, filepath.Join("testdata", "golden", "steps_empty.md"))
	if string(got) != want {
		t.Fatalf("unexpected report:\n--- want\n%s\n--- got\n%s", want, got)
	}
}

func TestStepsCommandJSONFormat(t *testing.T) {
	pinClock(t)

	outPath := filepath.Join(t.TempDir(), "summary.json")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"steps", outPath, "testdata/context.json", "testdata/steps.json", "--format", "json"})

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	err := cmd.Execute()
	if err == nil || err.Error() != "one or more tests failed" {
		t.Fatalf("expected verdict error, got %v", err)
	}

	data, readErr := os.ReadFile(outPath)
	if readErr != nil {
		t.Fatalf("read report: %v", readErr)
	}
	var decoded report.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if decoded.Title != "Build" || len(decoded.Entries) != 2 {
		t.Fatalf("unexpected report model: %+v", decoded)
	}
}

func TestStepsCommandWrongArgCount(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"steps", "only-one"})

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected argument count error")
	}
}

func TestStepsCommandMissingInput(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "summary.md")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"steps", outPath, "testdata/absent.json", "testdata/steps.json"})

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected missing input error")
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Fatalf("no output file should exist after a structural failure: %v", err)
	}
}

func TestStepsCommandMalformedPayload(t *testing.T) {
	dir := t.TempDir()
	stepsPath := filepath.Join(dir, "steps.json")
	broken := []byte(`{"check":{"outcome":"success","outputs":{"comparisons":"{'run1': "}}}`)
	if err := os.WriteFile(stepsPath, broken, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	outPath := filepath.Join(dir, "summary.md")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"steps", outPath, "testdata/context_minimal.json", stepsPath})

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err == nil {
		t.Fatal("malformed embedded payload must fail the whole run")
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Fatalf("no output file should exist after a payload failure: %v", err)
	}
}
