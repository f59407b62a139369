package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Cache is a handle to the on-disk request cache. It keeps an in-memory
// snapshot of the backing file, loaded lazily on first access, and rewrites
// the whole file after every Put. It is not safe for concurrent use; the CLI
// is single-threaded and two concurrent processes race as last-writer-wins.
type Cache struct {
	path    string
	entries map[string]json.RawMessage
	loaded  bool
}

// Open returns a cache handle backed by the file at path. The file is not
// read until the first Get or Put.
func Open(path string) *Cache {
	return &Cache{path: path}
}

// load reads the backing file into memory. Any failure (missing file,
// malformed JSON, permission error) yields an empty cache: absence of the
// cache must never block operation.
func (c *Cache) load() {
	if c.loaded {
		return
	}
	c.loaded = true
	c.entries = make(map[string]json.RawMessage)

	data, err := os.ReadFile(c.path)
	if err != nil {
		return
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return
	}
	if entries != nil {
		c.entries = entries
	}
}

// Get returns the cached body for a request identity, if present.
func (c *Cache) Get(key string) (json.RawMessage, bool) {
	c.load()
	value, ok := c.entries[key]
	return value, ok
}

// Put stores a body under a request identity and persists the updated cache.
// A failed write is surfaced: it means lost caching, and the caller should
// know about it.
func (c *Cache) Put(key string, value json.RawMessage) error {
	c.load()
	c.entries[key] = value
	return c.Flush()
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.load()
	return len(c.entries)
}

// Flush rewrites the backing file from the in-memory snapshot. The file is
// written to a temporary sibling and renamed into place, so a reader never
// observes a partially written document.
func (c *Cache) Flush() error {
	c.load()

	data, err := json.Marshal(c.entries)
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cache-*.json")
	if err != nil {
		return fmt.Errorf("creating temp cache file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing cache file: %w", err)
	}
	return nil
}

// Close flushes the in-memory snapshot if it was ever loaded.
func (c *Cache) Close() error {
	if !c.loaded {
		return nil
	}
	return c.Flush()
}
