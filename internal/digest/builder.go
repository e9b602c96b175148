package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/apal9569/robodev-agent/internal/feed"
	"github.com/apal9569/robodev-agent/internal/llm"
	"github.com/apal9569/robodev-agent/internal/profile"
)

// backendTimeout budgets the ranking call. Generation is slow; minutes
// are normal.
const backendTimeout = 5 * time.Minute

// ArticleFetcher pulls articles from the configured feed endpoints.
type ArticleFetcher interface {
	FetchAll(ctx context.Context, urls []string) feed.FetchResult
}

// ChatClient submits one ranking request to the generation backend.
type ChatClient interface {
	Chat(ctx context.Context, messages []llm.Message, task string) (string, error)
}

// Mailer delivers the finished report. Delivery is best-effort and
// never changes the pipeline result.
type Mailer interface {
	Send(ctx context.Context, subject, bodyMarkdown string) error
}

// Builder wires the pipeline together. Every Build call returns a
// string: a formatted digest, a degraded raw-text digest, or a
// human-readable diagnostic. Only unexpected conditions (an unwritable
// cache, mostly) surface as errors.
type Builder struct {
	Fetcher ArticleFetcher
	Client  ChatClient
	Cache   *Cache
	Mailer  Mailer // nil when delivery is not requested
	Profile profile.Profile
	Feeds   []string

	// Logf receives progress and warning lines; nil discards them.
	Logf func(format string, args ...any)

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// Options control one pipeline run.
type Options struct {
	Force bool // recompute even when a cache entry exists
	Email bool // deliver the result after computing it
}

// Build runs the pipeline for today: cache check, fetch, rank, format,
// persist, then best-effort delivery.
func (b *Builder) Build(ctx context.Context, opts Options) (string, error) {
	today := b.now().Format("2006-01-02")

	if !opts.Force {
		cached, ok, err := b.Cache.Load(today)
		if err != nil {
			return "", err
		}
		if ok {
			out := Format(cached)
			if opts.Email {
				b.deliver(ctx, today, out)
			}
			return out, nil
		}
	}

	result := b.Fetcher.FetchAll(ctx, b.Feeds)
	for _, f := range result.Failures {
		b.logf("[warn] failed to fetch %s: %v", f.URL, f.Err)
	}

	articles := result.Articles
	if len(articles) == 0 {
		out := "No articles fetched today."
		if opts.Email {
			b.deliver(ctx, today, out)
		}
		return out, nil
	}

	if len(articles) > maxArticles {
		articles = articles[:maxArticles]
	}
	prompt := rankPrompt(b.Profile, articles, today)
	b.logf("Fetched %d articles, prompt size: %d chars", len(articles), len(prompt))

	chatCtx, cancel := context.WithTimeout(ctx, backendTimeout)
	defer cancel()
	raw, err := b.Client.Chat(chatCtx, []llm.Message{{Role: "user", Content: prompt}}, "digest")
	if err != nil {
		out := fmt.Sprintf("LLM call failed: %v", err)
		if opts.Email {
			b.deliver(ctx, today, out)
		}
		return out, nil
	}

	var out string
	outcome := Parse(raw)
	if outcome.Degraded() {
		// Raw-text fallback is day-scoped and deliberately not
		// cached: a retry should recompute.
		out = outcome.Raw
	} else {
		if err := b.Cache.Save(today, outcome.Digest); err != nil {
			return "", err
		}
		out = Format(outcome.Digest)
	}

	if opts.Email {
		b.deliver(ctx, today, out)
	}
	return out, nil
}

func (b *Builder) deliver(ctx context.Context, date, body string) {
	if b.Mailer == nil {
		return
	}
	subject := fmt.Sprintf("🤖 RoboDev Daily Digest — %s", date)
	if err := b.Mailer.Send(ctx, subject, body); err != nil {
		b.logf("[warn] email not sent: %v", err)
		return
	}
	b.logf("Digest emailed.")
}

func (b *Builder) logf(format string, args ...any) {
	if b.Logf != nil {
		b.Logf(format, args...)
	}
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}
