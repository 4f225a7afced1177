package qrcode

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoises rendered images. A nil *Cache or one built with size 0
// renders on every call. Safe for concurrent use.
type Cache struct {
	entries  *lru.Cache[string, []byte]
	onLookup func(hit bool)
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLookupHook calls fn after every lookup with whether it was a hit.
func WithLookupHook(fn func(hit bool)) CacheOption {
	return func(c *Cache) {
		c.onLookup = fn
	}
}

// NewCache returns a cache holding up to size images.
func NewCache(size int, opts ...CacheOption) (*Cache, error) {
	c := &Cache{}
	for _, opt := range opts {
		opt(c)
	}
	if size < 0 {
		return nil, fmt.Errorf("qrcode: cache size must not be negative, got %d", size)
	}
	if size == 0 {
		return c, nil
	}
	entries, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: init cache: %w", err)
	}
	c.entries = entries
	return c, nil
}

// Generate returns the cached rendering of opts in format, rendering and
// storing it on a miss. Callers must not modify the returned slice.
func (c *Cache) Generate(opts Options, format Format) ([]byte, error) {
	if c == nil || c.entries == nil {
		return Generate(opts, format)
	}

	key := cacheKey(opts, format)
	if data, ok := c.entries.Get(key); ok {
		c.lookup(true)
		return data, nil
	}
	c.lookup(false)

	data, err := Generate(opts, format)
	if err != nil {
		return nil, err
	}
	c.entries.Add(key, data)
	return data, nil
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	if c == nil || c.entries == nil {
		return 0
	}
	return c.entries.Len()
}

func (c *Cache) lookup(hit bool) {
	if c.onLookup != nil {
		c.onLookup(hit)
	}
}

func cacheKey(opts Options, format Format) string {
	fg, bg := opts.colors()
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%d\x00%d\x00%s\x00%s\x00%d\x00",
		format, opts.Size, opts.Level, hexColor(fg), hexColor(bg), opts.QuietZone)
	h.Write([]byte(opts.Content))
	return hex.EncodeToString(h.Sum(nil))
}
