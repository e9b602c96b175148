// Package digest implements the daily digest pipeline: fetch curated
// feeds, have the generation backend rank and summarize them, render a
// categorized report, cache it per calendar date, and optionally mail
// it out.
package digest

// Digest is the structured output of ranking and summarization for one
// calendar day. Its JSON shape is the contract with both the backend
// prompt and the per-date cache files.
type Digest struct {
	Date       string      `json:"date"`
	Highlights []Highlight `json:"highlights"`
	OneLiner   string      `json:"one_liner"`
}

// Highlight is one selected, summarized, categorized article.
type Highlight struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Category  string `json:"category"`
	Relevance int    `json:"relevance"`
	Summary   string `json:"summary"`
}

// Fixed category labels. The backend is instructed to use exactly
// these; anything else renders after them, in first-seen order.
const (
	CategoryResearch  = "🔬 Research"
	CategoryTools     = "🛠 Tools/Libraries"
	CategoryIndustry  = "📰 Industry News"
	CategoryTutorials = "💡 Tutorials"
)

var categoryOrder = []string{
	CategoryResearch,
	CategoryTools,
	CategoryIndustry,
	CategoryTutorials,
}
