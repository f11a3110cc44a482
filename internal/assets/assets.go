// Package assets handles model loading and caching.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/objkit/internal/logger"
	"github.com/Faultbox/objkit/pkg/encoding"
	"github.com/Faultbox/objkit/pkg/formats"
)

// Manager loads OBJ models from disk.
type Manager struct {
	encoding string
	cache    *Cache // nil when caching is disabled
	log      *zap.Logger
}

// Options configures a Manager.
type Options struct {
	Encoding string // Source text encoding, see encoding.Lookup
	Cache    bool
}

// NewManager creates a new asset manager.
func NewManager(opts Options) (*Manager, error) {
	if _, err := encoding.Lookup(opts.Encoding); err != nil {
		return nil, err
	}

	m := &Manager{
		encoding: opts.Encoding,
		log:      logger.Log,
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if opts.Cache {
		m.cache = NewCache()
	}
	return m, nil
}

// Load parses the model at path, returning a cached copy if available.
// Models are immutable, so the same *OBJ may be shared between callers.
func (m *Manager) Load(path string) (*formats.OBJ, error) {
	key := filepath.Clean(path)

	if m.cache != nil {
		if obj, ok := m.cache.Get(key); ok {
			m.log.Debug("model cache hit", zap.String("path", key))
			return obj, nil
		}
	}

	obj, err := m.read(key)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	m.log.Debug("model loaded",
		zap.String("path", key),
		zap.Int("positions", len(obj.Positions())),
		zap.Int("objects", obj.ObjectCount()))

	if m.cache != nil {
		m.cache.Set(key, obj)
	}
	return obj, nil
}

func (m *Manager) read(path string) (*formats.OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := encoding.NewReader(f, m.encoding)
	if err != nil {
		return nil, err
	}
	return formats.ReadOBJ(r)
}

// Stats returns cache statistics. Both are zero when caching is disabled.
func (m *Manager) Stats() (hits, misses int) {
	if m.cache == nil {
		return 0, 0
	}
	return m.cache.Stats()
}

// Close drops all cached models.
func (m *Manager) Close() {
	if m.cache != nil {
		m.cache.Clear()
	}
}

// Cache is a simple in-memory cache for parsed models.
type Cache struct {
	data map[string]*formats.OBJ
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*formats.OBJ),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*formats.OBJ, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	obj, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return obj, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, obj *formats.OBJ) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = obj
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*formats.OBJ)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
