package feed

import (
	"context"
	"strings"
	"sync"

	"github.com/mmcdole/gofeed"
)

// maxSummaryRunes bounds each article summary so the downstream
// ranking prompt stays a sane size.
const maxSummaryRunes = 500

// Article is one normalized feed entry. Articles live in memory for a
// single pipeline run; they are never persisted individually.
type Article struct {
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Source    string  `json:"source"`
	Summary   string  `json:"summary"`
	Published string  `json:"published"`
	Relevance float64 `json:"relevance_score"`
}

// Failure records one feed that could not be fetched or parsed.
type Failure struct {
	URL string
	Err error
}

// FetchResult aggregates per-feed outcomes. Failed feeds contribute
// zero articles and one Failure entry; they never abort the batch.
type FetchResult struct {
	Articles []Article
	Failures []Failure
}

type Fetcher struct {
	parser     *gofeed.Parser
	maxPerFeed int
}

func NewFetcher(maxPerFeed int) *Fetcher {
	if maxPerFeed <= 0 {
		maxPerFeed = 15
	}
	return &Fetcher{parser: gofeed.NewParser(), maxPerFeed: maxPerFeed}
}

// Fetch pulls one feed and normalizes its first entries, in provider
// order, up to the per-feed cap.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]Article, error) {
	parsed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, err
	}

	source := parsed.Title
	if source == "" {
		source = url
	}

	items := parsed.Items
	if len(items) > f.maxPerFeed {
		items = items[:f.maxPerFeed]
	}

	articles := make([]Article, 0, len(items))
	for _, item := range items {
		summary := item.Description
		if summary == "" {
			summary = item.Content
		}
		articles = append(articles, Article{
			Title:     item.Title,
			URL:       item.Link,
			Source:    source,
			Summary:   truncate(stripHTML(summary), maxSummaryRunes),
			Published: item.Published,
		})
	}
	return articles, nil
}

// FetchAll fetches every endpoint concurrently. The zero-article case
// is not an error here; the caller decides what an empty day means.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) FetchResult {
	var (
		mu     sync.Mutex
		result FetchResult
		wg     sync.WaitGroup
	)

	for _, u := range urls {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()
			articles, err := f.Fetch(ctx, url)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failures = append(result.Failures, Failure{URL: url, Err: err})
				return
			}
			result.Articles = append(result.Articles, articles...)
		}(u)
	}

	wg.Wait()
	return result
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
