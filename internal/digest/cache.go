package digest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Cache persists one serialized digest per calendar date. It is an
// optimization, not a correctness-critical store: entries are
// last-write-wins and anything unreadable is treated as absent so the
// pipeline just recomputes.
type Cache struct {
	dir string
}

func OpenCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating digest cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) path(date string) string {
	return filepath.Join(c.dir, fmt.Sprintf("digest_%s.json", date))
}

// Save overwrites the entry for date with the whole digest.
func (c *Cache) Save(date string, d *Digest) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path(date), data, 0o644); err != nil {
		return fmt.Errorf("writing digest cache: %w", err)
	}
	return nil
}

// Load returns the cached digest for date, with ok=false when no
// usable entry exists.
func (c *Cache) Load(date string) (*Digest, bool, error) {
	data, err := os.ReadFile(c.path(date))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading digest cache: %w", err)
	}
	var d Digest
	if err := json.Unmarshal(data, &d); err != nil {
		// Corrupt entry: recompute rather than fail
		return nil, false, nil
	}
	return &d, true, nil
}
