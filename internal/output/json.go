package output

import (
	"encoding/json"
	"io"

	"jobsum/internal/report"
)

// JSONRenderer emits the canonical report as machine-readable JSON.
type JSONRenderer struct {
	out io.Writer
}

// NewJSON creates a JSON renderer writing to out.
func NewJSON(out io.Writer) *JSONRenderer {
	return &JSONRenderer{out: out}
}

// Render encodes the report as indented JSON.
func (j *JSONRenderer) Render(rep report.Report) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
