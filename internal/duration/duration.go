// Package duration normalizes the timing values found in CI result
// documents. Producers disagree on representation: some emit bare
// millisecond numbers, others strings like "1.5s".
package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a raw timing value into milliseconds. Numbers are taken
// as milliseconds already; strings with a trailing "s" are seconds and
// keep their fractional precision. Anything else parses to zero: timing
// is cosmetic and must never abort a report.
func Parse(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if strings.HasSuffix(v, "s") {
			seconds, err := strconv.ParseFloat(strings.TrimSuffix(v, "s"), 64)
			if err != nil {
				return 0
			}
			return seconds * 1000
		}
		ms, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return ms
	default:
		return 0
	}
}

// Format renders milliseconds as a human readable duration string.
func Format(ms float64) string {
	if ms < 1000 {
		return fmt.Sprintf("%.2fms", ms)
	}
	seconds := ms / 1000
	if seconds < 60 {
		return fmt.Sprintf("%.2fs", seconds)
	}
	return fmt.Sprintf("%.2fm", seconds/60)
}
