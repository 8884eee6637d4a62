// Package promptcache is a content-addressed file cache for generated
// documents: identical (normalized) descriptions reuse the stored draft
// instead of a second generation call.
package promptcache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Cache struct {
	dir string
}

type entry struct {
	Prompt string `json:"prompt"`
	Text   string `json:"text"`
}

func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// Normalize maps equivalent descriptions onto one cache key.
func Normalize(prompt string) string {
	return strings.ToLower(strings.TrimSpace(prompt))
}

func (c *Cache) path(prompt string) string {
	sum := sha256.Sum256([]byte(Normalize(prompt)))
	return filepath.Join(c.dir, fmt.Sprintf("%x.json", sum))
}

// Load returns the cached document for the prompt, if present.
func (c *Cache) Load(prompt string) (string, bool, error) {
	data, err := os.ReadFile(c.path(prompt))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read cache entry: %w", err)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		// A corrupt entry behaves like a miss; it will be overwritten.
		return "", false, nil
	}
	return e.Text, true, nil
}

// Save stores the generated document under the prompt's key.
func (c *Cache) Save(prompt, text string) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	data, err := json.Marshal(entry{Prompt: Normalize(prompt), Text: text})
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	if err := os.WriteFile(c.path(prompt), data, 0644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}
