package digest

import (
	"fmt"
	"sort"
	"strings"
)

// Format renders a digest as markdown. It is pure and deterministic:
// the same digest always yields the same string.
//
// Highlights keep the order the backend supplied within each category.
// Unknown categories sort after the fixed set, in first-seen order,
// and an empty category falls back to Industry News.
func Format(d *Digest) string {
	date := d.Date
	if date == "" {
		date = "today"
	}

	lines := []string{
		fmt.Sprintf("# 🤖 RoboDev Daily Digest — %s", date),
		fmt.Sprintf("\n> %s", d.OneLiner),
		"",
	}

	grouped := map[string][]Highlight{}
	var firstSeen []string
	for _, h := range d.Highlights {
		cat := strings.TrimSpace(h.Category)
		if cat == "" {
			cat = CategoryIndustry
		}
		if _, ok := grouped[cat]; !ok {
			firstSeen = append(firstSeen, cat)
		}
		grouped[cat] = append(grouped[cat], h)
	}

	cats := append([]string(nil), firstSeen...)
	sort.SliceStable(cats, func(i, j int) bool {
		return categoryRank(cats[i]) < categoryRank(cats[j])
	})

	for _, cat := range cats {
		lines = append(lines, fmt.Sprintf("\n## %s\n", cat))
		for _, h := range grouped[cat] {
			title := h.Title
			if title == "" {
				title = "Untitled"
			}
			if h.URL != "" {
				lines = append(lines, fmt.Sprintf("### [%s](%s)", title, h.URL))
			} else {
				lines = append(lines, fmt.Sprintf("### %s", title))
			}
			lines = append(lines, fmt.Sprintf("**Relevance: %d/10**", h.Relevance))
			lines = append(lines, h.Summary)
			lines = append(lines, "")
		}
	}

	lines = append(lines, "---")
	lines = append(lines, fmt.Sprintf("_Total articles reviewed: %d_", len(d.Highlights)))
	return strings.Join(lines, "\n")
}

func categoryRank(cat string) int {
	for i, c := range categoryOrder {
		if c == cat {
			return i
		}
	}
	return len(categoryOrder) + 95
}
