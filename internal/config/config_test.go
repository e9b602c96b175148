package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if len(cfg.Feeds) == 0 {
		t.Error("expected at least one default feed")
	}
	if cfg.BackendHost == "" {
		t.Error("expected backend_host to be set")
	}
	if cfg.PerFeedCap() != 15 {
		t.Errorf("expected default per-feed cap 15, got %d", cfg.PerFeedCap())
	}
}

func TestEnabledFeeds(t *testing.T) {
	cfg := &Config{
		Feeds: []Feed{
			{URL: "https://a.example/rss", Enabled: true},
			{URL: "https://b.example/rss", Enabled: false},
			{URL: "https://c.example/rss", Enabled: true},
		},
	}
	urls := cfg.EnabledFeeds()
	if len(urls) != 2 {
		t.Fatalf("expected 2 enabled feeds, got %d", len(urls))
	}
	if urls[0] != "https://a.example/rss" || urls[1] != "https://c.example/rss" {
		t.Errorf("unexpected enabled feeds: %v", urls)
	}
}

func TestHostDefault(t *testing.T) {
	cfg := &Config{}
	if cfg.Host() != "http://localhost:11434" {
		t.Errorf("unexpected default host: %q", cfg.Host())
	}
	cfg.BackendHost = "http://gpu-box:11434"
	if cfg.Host() != "http://gpu-box:11434" {
		t.Errorf("expected configured host, got %q", cfg.Host())
	}
}

func TestLoadUserConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
backend_host: "http://localhost:9999"
max_per_feed: 5
feeds:
  - name: "Test"
    url: "https://example.com/feed"
    enabled: true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host() != "http://localhost:9999" {
		t.Errorf("unexpected host: %q", cfg.Host())
	}
	if cfg.PerFeedCap() != 5 {
		t.Errorf("unexpected cap: %d", cfg.PerFeedCap())
	}
	if len(cfg.EnabledFeeds()) != 1 {
		t.Errorf("expected 1 feed, got %d", len(cfg.EnabledFeeds()))
	}
}

func TestLoadMissingWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Feeds) == 0 {
		t.Error("expected default feeds")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected defaults written to %s: %v", path, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		feed Feed
		ok   bool
	}{
		{"valid https", Feed{URL: "https://example.com/rss"}, true},
		{"valid http", Feed{URL: "http://example.com/rss"}, true},
		{"missing url", Feed{Name: "NoURL"}, false},
		{"bad scheme", Feed{URL: "ftp://example.com/rss"}, false},
	}
	for _, tt := range tests {
		cfg := &Config{Feeds: []Feed{tt.feed}}
		err := validate(cfg)
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
