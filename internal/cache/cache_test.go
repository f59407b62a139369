package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	c := Open(path)
	require.NoError(t, c.Put("https://example.com/a", json.RawMessage(`"<html>page</html>"`)))
	require.NoError(t, c.Put("https://example.com/b", json.RawMessage(`{"searchResults":[]}`)))
	require.NoError(t, c.Close())

	// A fresh handle sees both entries from disk.
	reopened := Open(path)
	page, ok := reopened.Get("https://example.com/a")
	require.True(t, ok)
	require.JSONEq(t, `"<html>page</html>"`, string(page))

	api, ok := reopened.Get("https://example.com/b")
	require.True(t, ok)
	require.JSONEq(t, `{"searchResults":[]}`, string(api))
	require.Equal(t, 2, reopened.Len())
}

func TestFlushIsNoOpWithoutMutation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	c := Open(path)
	require.NoError(t, c.Put("k", json.RawMessage(`"v"`)))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	reopened := Open(path)
	require.NoError(t, reopened.Flush())
	after, err := os.ReadFile(path)
	require.NoError(t, err)

	require.JSONEq(t, string(before), string(after))
}

func TestMissingFileYieldsEmptyCache(t *testing.T) {
	c := Open(filepath.Join(t.TempDir(), "does-not-exist.json"))
	_, ok := c.Get("anything")
	require.False(t, ok)
	require.Equal(t, 0, c.Len())
}

func TestCorruptFileYieldsEmptyCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	c := Open(path)
	_, ok := c.Get("anything")
	require.False(t, ok)

	// A Put recovers the file to a valid document.
	require.NoError(t, c.Put("k", json.RawMessage(`"v"`)))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, json.Valid(data))
}

func TestFlushLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	c := Open(filepath.Join(dir, "cache.json"))
	require.NoError(t, c.Put("k", json.RawMessage(`"v"`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "cache.json", entries[0].Name())
}
