package digest

import (
	"fmt"
	"strings"

	"github.com/apal9569/robodev-agent/internal/feed"
	"github.com/apal9569/robodev-agent/internal/profile"
)

// maxArticles bounds how many fetched articles go into one ranking
// request.
const maxArticles = 20

const rankPromptTemplate = `You are a robotics news curator for an engineer with this profile:
- Stack: %s
- Robot type: %s
- Interests: %s

Here are today's articles (title | source | abstract):
%s

Tasks:
1. Score each article 0-10 for relevance to the engineer's profile.
2. Pick the TOP 10 most relevant.
3. For each, write a paragraph of actionable summary (what's new, why it matters, link to paper/code if mentioned).
4. Group into categories: 🔬 Research, 🛠 Tools/Libraries, 📰 Industry News, 💡 Tutorials

Output JSON:
{
  "date": "%s",
  "highlights": [
    {
      "title": "...",
      "url": "...",
      "category": "...",
      "relevance": N,
      "summary": "..."
    }
  ],
  "one_liner": "One sentence TL;DR of today's most important development"
}
`

func rankPrompt(p profile.Profile, articles []feed.Article, date string) string {
	return fmt.Sprintf(rankPromptTemplate,
		p.Stack, p.RobotType, p.Interests, articleBlock(articles), date)
}

// articleBlock renders one line per article, with abstracts clipped
// hard so 20 articles still fit a single request.
func articleBlock(articles []feed.Article) string {
	var lines []string
	for _, a := range articles {
		title := strings.TrimSpace(a.Title)
		if title == "" {
			continue
		}
		summary := strings.TrimSpace(clip(a.Summary, 100))
		lines = append(lines, fmt.Sprintf("- %s | %s | %s", title, strings.TrimSpace(a.Source), summary))
	}
	return strings.Join(lines, "\n")
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
