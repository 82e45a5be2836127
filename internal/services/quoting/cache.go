package quoting

import (
	"strings"
	"sync"
	"time"

	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
	"github.com/ivan0796/swaplaunch-sub000/internal/metrics"
)

const janitorInterval = 60 * time.Second

type cacheEntry struct {
	quote     *domain.Quote
	expiresAt time.Time
}

// Cache is a TTL cache for normalized quotes. The TTL is short because a
// quote's buy amount goes stale with the market; expired entries linger until
// the janitor sweep but are never served.
type Cache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cacheEntry
	stop    chan struct{}
	once    sync.Once
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		stop:    make(chan struct{}),
	}
}

// CacheKey identifies a quote request. Two requests differing only in
// address casing on an EVM chain map to the same key.
func CacheKey(req domain.QuoteRequest) string {
	parts := []string{
		req.Chain.String(),
		domain.NormalizeAddress(req.Chain, req.SellToken),
		domain.NormalizeAddress(req.Chain, req.BuyToken),
		req.SellAmount,
		req.TakerAddress,
	}
	return strings.Join(parts, "|")
}

func (c *Cache) Get(key string) (*domain.Quote, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		metrics.QuoteCacheMisses.Inc()
		return nil, false
	}
	metrics.QuoteCacheHits.Inc()
	return entry.quote, true
}

func (c *Cache) Set(key string, q *domain.Quote) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{quote: q, expiresAt: time.Now().Add(c.ttl)}
	size := len(c.entries)
	c.mu.Unlock()
	metrics.QuoteCacheSize.Set(float64(size))
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// StartJanitor launches the background sweep that evicts expired entries.
func (c *Cache) StartJanitor() {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.sweep()
			case <-c.stop:
				return
			}
		}
	}()
}

func (c *Cache) Stop() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Cache) sweep() {
	now := time.Now()
	c.mu.Lock()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
	size := len(c.entries)
	c.mu.Unlock()
	metrics.QuoteCacheSize.Set(float64(size))
}
