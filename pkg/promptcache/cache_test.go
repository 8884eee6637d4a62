package promptcache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheRoundTrip(t *testing.T) {
	c := New(t.TempDir())

	if _, found, err := c.Load("нужен договор аренды"); err != nil || found {
		t.Fatalf("empty cache: found=%v err=%v", found, err)
	}

	if err := c.Save("нужен договор аренды", "ДОГОВОР АРЕНДЫ..."); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	text, found, err := c.Load("нужен договор аренды")
	if err != nil || !found {
		t.Fatalf("Load() after Save: found=%v err=%v", found, err)
	}
	if text != "ДОГОВОР АРЕНДЫ..." {
		t.Errorf("Load() = %q", text)
	}
}

func TestCacheKeyNormalization(t *testing.T) {
	c := New(t.TempDir())

	if err := c.Save("Нужен Договор Аренды", "текст"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Case and surrounding whitespace must not change the key.
	text, found, err := c.Load("  нужен договор аренды  ")
	if err != nil || !found {
		t.Fatalf("normalized lookup failed: found=%v err=%v", found, err)
	}
	if text != "текст" {
		t.Errorf("Load() = %q", text)
	}
}

func TestCacheCorruptEntryIsAMiss(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)

	if err := c.Save("запрос", "текст"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one cache file, got %d (err=%v)", len(entries), err)
	}
	if err := os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, found, err := c.Load("запрос"); err != nil || found {
		t.Errorf("corrupt entry must read as a miss: found=%v err=%v", found, err)
	}
}
