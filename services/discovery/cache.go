package discovery

import (
	"encoding/json"
	"log"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// SessionCache is a small JSON-file-backed cache for catalog responses that
// rarely change within a run, such as the festival spotlight. A corrupt or
// missing file behaves as an empty cache.
type SessionCache struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

// NewSessionCache returns a cache persisted at path on fs. Tests pass
// afero.NewMemMapFs().
func NewSessionCache(fs afero.Fs, path string) *SessionCache {
	return &SessionCache{fs: fs, path: path}
}

func (c *SessionCache) read() map[string]json.RawMessage {
	entries := make(map[string]json.RawMessage)

	data, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		return entries
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("[cache] discarding unreadable cache file %q: %v", c.path, err)
		return make(map[string]json.RawMessage)
	}
	return entries
}

// Get unmarshals the cached entry for key into out, reporting whether one
// existed and decoded cleanly.
func (c *SessionCache) Get(key string, out any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.read()[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("[cache] discarding unreadable entry %q: %v", key, err)
		return false
	}
	return true
}

// Put stores value under key. Write failures are logged and swallowed; the
// cache is best effort.
func (c *SessionCache) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := c.read()
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("[cache] marshal entry %q: %v", key, err)
		return
	}
	entries[key] = raw

	data, err := json.Marshal(entries)
	if err != nil {
		log.Printf("[cache] marshal cache file: %v", err)
		return
	}
	if dir := filepath.Dir(c.path); dir != "" && dir != "." {
		if err := c.fs.MkdirAll(dir, 0755); err != nil {
			log.Printf("[cache] create cache directory: %v", err)
			return
		}
	}
	if err := afero.WriteFile(c.fs, c.path, data, 0644); err != nil {
		log.Printf("[cache] write cache file %q: %v", c.path, err)
	}
}
