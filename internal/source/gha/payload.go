package gha

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"jobsum/internal/report"
)

// PayloadError reports a malformed embedded comparison payload. Malformed
// payloads indicate a producer defect, so they fail the whole run rather
// than one entry.
type PayloadError struct {
	Err error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("embedded payload: %v", e.Err)
}

func (e *PayloadError) Unwrap() error { return e.Err }

type comparisonDocument struct {
	Expected any `json:"expected"`
	Reported any `json:"reported"`
}

// Requote rewrites a single-quoted JSON document into standard JSON. An
// unescaped single quote becomes a double quote; an escaped \' becomes a
// literal single quote.
func Requote(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && s[i+1] == '\'' {
			b.WriteByte('\'')
			i++
			continue
		}
		if c == '\'' {
			b.WriteByte('"')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// ParsePayload runs the two-stage decode on an embedded payload string:
// requote, then parse as JSON, then extract one SubResult per comparison
// key in document order. List-valued entries are a different producer
// shape and are skipped without error.
func ParsePayload(encoded string, log zerolog.Logger) ([]report.SubResult, error) {
	requoted := Requote(encoded)

	var results []report.SubResult
	err := walkObject([]byte(requoted), func(key string, raw json.RawMessage) error {
		var probe any
		if err := json.Unmarshal(raw, &probe); err != nil {
			return err
		}
		if _, isList := probe.([]any); isList {
			log.Debug().Str("key", key).Msg("skipping list-valued comparison entry")
			return nil
		}

		var comp comparisonDocument
		if err := json.Unmarshal(raw, &comp); err != nil {
			return fmt.Errorf("comparison %q: %w", key, err)
		}
		results = append(results, report.NewSubResult(key, comp.Expected, comp.Reported))
		return nil
	})
	if err != nil {
		return nil, &PayloadError{Err: err}
	}
	return results, nil
}
