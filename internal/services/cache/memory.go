package cache

import (
	"sync"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/taberna/internal/interfaces"
	"github.com/ternarybob/taberna/internal/models"
)

type memoryEntry struct {
	records   []models.Restaurant
	createdAt time.Time
}

// MemoryCache is an in-process search result cache. Stale entries are
// treated as misses but stay in the map until Clear is called.
type MemoryCache struct {
	entries map[string]memoryEntry
	maxAge  time.Duration
	mu      sync.RWMutex
	logger  arbor.ILogger

	// nowFn is swapped in tests to control staleness
	nowFn func() time.Time
}

// NewMemoryCache creates an in-memory cache service
func NewMemoryCache(maxAge time.Duration, logger arbor.ILogger) interfaces.CacheService {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		maxAge:  maxAge,
		logger:  logger,
		nowFn:   time.Now,
	}
}

// Get returns the cached records for a fingerprint on a fresh hit
func (c *MemoryCache) Get(fingerprint string) ([]models.Restaurant, bool) {
	c.mu.RLock()
	entry, ok := c.entries[fingerprint]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.nowFn().Sub(entry.createdAt) > c.maxAge {
		c.logger.Debug().
			Str("fingerprint", fingerprint).
			Msg("Cache entry is stale")
		return nil, false
	}

	c.logger.Debug().
		Str("fingerprint", fingerprint).
		Int("records", len(entry.records)).
		Msg("Cache hit")

	// Callers may annotate the returned records (DistanceFromUser);
	// hand out a copy so the cached set stays untouched.
	return append([]models.Restaurant(nil), entry.records...), true
}

// Put stores records under a fingerprint, replacing any prior entry
func (c *MemoryCache) Put(fingerprint string, records []models.Restaurant) error {
	c.mu.Lock()
	c.entries[fingerprint] = memoryEntry{
		records:   append([]models.Restaurant(nil), records...),
		createdAt: c.nowFn(),
	}
	c.mu.Unlock()

	c.logger.Debug().
		Str("fingerprint", fingerprint).
		Int("records", len(records)).
		Msg("Cached search results")

	return nil
}

// Clear removes all entries, fresh and stale alike
func (c *MemoryCache) Clear() error {
	c.mu.Lock()
	count := len(c.entries)
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()

	c.logger.Info().
		Int("entries_removed", count).
		Msg("Cache cleared")

	return nil
}

// Close is a no-op for the in-memory backend
func (c *MemoryCache) Close() error {
	return nil
}
