package hostconfig

import (
	"crypto/sha256"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/arthur-debert/cardrender/pkg/errors"
)

// DefaultCacheSize is the number of parsed host configs a Cache keeps
const DefaultCacheSize = 64

type cacheKey [sha256.Size]byte

// Cache memoizes Parse by document content. Returned configs are shared
// between callers and must not be mutated; Clone them first.
type Cache struct {
	entries *lru.Cache[cacheKey, *HostConfig]
}

// NewCache creates a cache holding up to size parsed configs
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[cacheKey, *HostConfig](size)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to create host config cache")
	}
	return &Cache{entries: entries}, nil
}

// Parse returns the cached config for data or parses and stores it.
// Parse failures are not cached.
func (c *Cache) Parse(data []byte, format Format) (*HostConfig, error) {
	key := c.key(data, format)
	if cfg, ok := c.entries.Get(key); ok {
		return cfg, nil
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	c.entries.Add(key, cfg)
	return cfg, nil
}

// Len returns the number of cached configs
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached config
func (c *Cache) Purge() {
	c.entries.Purge()
}

func (c *Cache) key(data []byte, format Format) cacheKey {
	h := sha256.New()
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write(data)
	var k cacheKey
	copy(k[:], h.Sum(nil))
	return k
}
