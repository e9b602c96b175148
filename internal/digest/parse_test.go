package digest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const validJSON = `{
  "date": "2026-08-31",
  "highlights": [
    {"title": "New SLAM method", "url": "https://arxiv.org/abs/1", "category": "🔬 Research", "relevance": 9, "summary": "Dense mapping."}
  ],
  "one_liner": "SLAM got better."
}`

func TestParseBareJSON(t *testing.T) {
	o := Parse(validJSON)
	if o.Degraded() {
		t.Fatalf("expected structured digest, got raw: %q", o.Raw)
	}
	want := &Digest{
		Date:     "2026-08-31",
		OneLiner: "SLAM got better.",
		Highlights: []Highlight{
			{Title: "New SLAM method", URL: "https://arxiv.org/abs/1", Category: CategoryResearch, Relevance: 9, Summary: "Dense mapping."},
		},
	}
	if diff := cmp.Diff(want, o.Digest); diff != "" {
		t.Errorf("digest mismatch (-want +got):\n%s", diff)
	}
}

func TestParseWrappedInProse(t *testing.T) {
	raw := "Sure! Here's today's digest:\n\n```json\n" + validJSON + "\n```\n\nLet me know if you need anything else."
	o := Parse(raw)
	if o.Degraded() {
		t.Fatalf("expected structured digest from fenced response, got raw: %q", o.Raw)
	}
	if o.Digest.Date != "2026-08-31" {
		t.Errorf("unexpected date: %q", o.Digest.Date)
	}
	if len(o.Digest.Highlights) != 1 {
		t.Errorf("expected 1 highlight, got %d", len(o.Digest.Highlights))
	}
}

func TestParsePlainProseDegrades(t *testing.T) {
	raw := "I could not find any relevant articles today, sorry."
	o := Parse(raw)
	if !o.Degraded() {
		t.Fatal("expected degraded outcome for brace-free prose")
	}
	if o.Raw != raw {
		t.Errorf("expected raw text passed through verbatim, got %q", o.Raw)
	}
}

func TestParseBrokenJSONDegrades(t *testing.T) {
	raw := `{"date": "2026-08-31", "highlights": [}`
	o := Parse(raw)
	if !o.Degraded() {
		t.Fatal("expected degraded outcome for malformed JSON")
	}
	if o.Raw != raw {
		t.Errorf("expected raw text preserved, got %q", o.Raw)
	}
}

func TestParseEmptyObject(t *testing.T) {
	o := Parse("{}")
	if o.Degraded() {
		t.Fatal("expected empty object to decode")
	}
	if len(o.Digest.Highlights) != 0 {
		t.Errorf("expected no highlights, got %d", len(o.Digest.Highlights))
	}
}
