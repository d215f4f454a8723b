// Package assetcache is the offline asset cache in front of the
// application shell: preload the shell at startup, serve from memory,
// fall back to disk and opportunistically cache whatever is found. It
// only affects asset availability, never application data.
package assetcache

import (
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type entry struct {
	data        []byte
	contentType string
}

// Cache is an in-memory static-asset cache over a root directory.
type Cache struct {
	root string
	log  *zap.Logger

	mu      sync.RWMutex
	entries map[string]entry
}

// New creates a cache over the given asset directory
func New(root string, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		root:    root,
		log:     log.Named("assetcache"),
		entries: make(map[string]entry),
	}
}

// Preload populates the cache with the application shell. Missing shell
// assets are logged and skipped; they will be cached on first request if
// they appear later.
func (c *Cache) Preload(shell []string) {
	for _, p := range shell {
		if _, ok := c.load(p); !ok {
			c.log.Warn("Shell asset not preloaded", zap.String("path", p))
		}
	}
	c.mu.RLock()
	n := len(c.entries)
	c.mu.RUnlock()
	c.log.Info("Asset cache preloaded", zap.Int("assets", n))
}

// Get returns the asset at the given path, serving from cache first and
// falling back to disk; a successful disk read populates the cache.
func (c *Cache) Get(p string) (data []byte, contentType string, ok bool) {
	p = normalize(p)
	if p == "" {
		return nil, "", false
	}

	c.mu.RLock()
	e, hit := c.entries[p]
	c.mu.RUnlock()
	if hit {
		return e.data, e.contentType, true
	}

	e, ok = c.load(p)
	if !ok {
		return nil, "", false
	}
	return e.data, e.contentType, true
}

// load reads an asset from disk and caches it.
func (c *Cache) load(p string) (entry, bool) {
	p = normalize(p)
	data, err := os.ReadFile(filepath.Join(c.root, filepath.FromSlash(p)))
	if err != nil {
		return entry{}, false
	}

	contentType := mime.TypeByExtension(path.Ext(p))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	e := entry{data: data, contentType: contentType}

	c.mu.Lock()
	c.entries[p] = e
	c.mu.Unlock()
	return e, true
}

// normalize cleans a request path into a cache key, rejecting traversal.
func normalize(p string) string {
	p = path.Clean("/" + strings.TrimPrefix(p, "/"))
	if p == "/" {
		p = "/index.html"
	}
	if strings.Contains(p, "..") {
		return ""
	}
	return strings.TrimPrefix(p, "/")
}
