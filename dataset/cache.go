package dataset

import "sync"

// Loader loads a named workbook under a header shape. FileLoader is the
// real implementation; tests substitute fakes.
type Loader interface {
	Load(name string, shape HeaderShape) (*Table, error)
}

var _ Loader = (*FileLoader)(nil)

type cacheKey struct {
	name  string
	shape HeaderShape
}

// Cache memoizes successful loads per (file name, header shape) key, so
// the same workbook read under two shapes caches as two tables. Failures
// are never cached: a user can drop a missing file into the data folder
// and retry without restarting. Safe for concurrent use; a populate race
// may parse twice but callers always observe a single cached table.
type Cache struct {
	loader Loader

	mu     sync.RWMutex
	tables map[cacheKey]*Table
}

var _ Loader = (*Cache)(nil)

// NewCache wraps a loader with memoization.
func NewCache(loader Loader) *Cache {
	return &Cache{
		loader: loader,
		tables: make(map[cacheKey]*Table),
	}
}

// Load returns the cached table for the key, loading and caching it on
// first use. Cached tables are shared: callers must treat them as
// read-only, as every dataset operation already does.
func (c *Cache) Load(name string, shape HeaderShape) (*Table, error) {
	key := cacheKey{name: name, shape: shape}

	c.mu.RLock()
	t, ok := c.tables[key]
	c.mu.RUnlock()
	if ok {
		return t, nil
	}

	loaded, err := c.loader.Load(name, shape)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.tables[key]; ok {
		// Another goroutine populated the key first; keep its table.
		return t, nil
	}
	c.tables[key] = loaded
	return loaded, nil
}

// Invalidate drops every cached table. The next Load per key re-reads
// from disk.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables = make(map[cacheKey]*Table)
}
