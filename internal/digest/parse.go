package digest

import (
	"encoding/json"
	"strings"
)

// Outcome is the tagged result of parsing a backend response: either a
// structured Digest or the raw text passed through as a degraded
// digest. Malformed output is an expected case, never an error.
type Outcome struct {
	Digest *Digest
	Raw    string
}

// Degraded reports whether structured decoding failed and Raw should
// be shown to the user as-is.
func (o Outcome) Degraded() bool { return o.Digest == nil }

// Parse extracts a Digest from the backend's free-text reply. The
// model sometimes wraps the JSON in prose or code fences, so the first
// attempt decodes the outermost { ... } span; if no such span exists
// the whole reply is tried as JSON.
func Parse(raw string) Outcome {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")

	candidate := raw
	if start >= 0 && end > start {
		candidate = raw[start : end+1]
	}

	var d Digest
	if err := json.Unmarshal([]byte(candidate), &d); err == nil {
		return Outcome{Digest: &d}
	}
	return Outcome{Raw: raw}
}
