package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Feed is one syndication endpoint in the digest mix.
type Feed struct {
	Name    string `yaml:"name,omitempty"`
	URL     string `yaml:"url"`
	Enabled bool   `yaml:"enabled"`
}

type Config struct {
	BackendHost string `yaml:"backend_host"`
	MaxPerFeed  int    `yaml:"max_per_feed"`
	Feeds       []Feed `yaml:"feeds"`
}

// EnabledFeeds returns the endpoint URLs of all enabled feeds, in config order.
func (c *Config) EnabledFeeds() []string {
	var urls []string
	for _, f := range c.Feeds {
		if f.Enabled {
			urls = append(urls, f.URL)
		}
	}
	return urls
}

// PerFeedCap returns the max entries taken per feed, defaulting to 15.
func (c *Config) PerFeedCap() int {
	if c.MaxPerFeed <= 0 {
		return 15
	}
	return c.MaxPerFeed
}

// Host returns the generation backend address, defaulting to a local
// Ollama instance.
func (c *Config) Host() string {
	if c.BackendHost == "" {
		return "http://localhost:11434"
	}
	return c.BackendHost
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "robodev", "config.yaml")
}

// ProfilePath is where the per-user engineering profile lives.
func ProfilePath() string {
	return filepath.Join(xdg.ConfigHome, "robodev", "profile.json")
}

// MailConfigPath is where the mail transport credentials live.
func MailConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "robodev", "mail.json")
}

// DigestCacheDir holds one serialized digest file per calendar date.
func DigestCacheDir() string {
	return filepath.Join(xdg.CacheHome, "robodev", "news")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	for i, f := range cfg.Feeds {
		if f.URL == "" {
			return fmt.Errorf("feed %d: url is required", i)
		}
		u, err := url.Parse(f.URL)
		if err != nil {
			return fmt.Errorf("feed %q: invalid url: %w", f.URL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("feed %q: url scheme must be http or https, got %q", f.URL, u.Scheme)
		}
	}
	return nil
}
