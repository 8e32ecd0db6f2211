package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ternarybob/taberna/internal/interfaces"
	"github.com/ternarybob/taberna/internal/models"
)

// CachedSearch is the persisted form of one search result set
type CachedSearch struct {
	Fingerprint string `badgerhold:"key"`
	Records     []models.Restaurant
	CreatedAt   time.Time
}

// BadgerCache persists search results across restarts using badgerhold.
// Staleness semantics match the in-memory backend: stale entries miss
// but are only removed by Clear.
type BadgerCache struct {
	store  *badgerhold.Store
	maxAge time.Duration
	logger arbor.ILogger

	// nowFn is swapped in tests to control staleness
	nowFn func() time.Time
}

// NewBadgerCache opens (or creates) the on-disk cache at path
func NewBadgerCache(path string, maxAge time.Duration, logger arbor.ILogger) (interfaces.CacheService, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = path
	options.ValueDir = path
	options.Logger = nil // Disable default badger logger to use arbor

	store, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger cache: %w", err)
	}

	logger.Debug().Str("path", path).Msg("Badger cache initialized")

	return &BadgerCache{
		store:  store,
		maxAge: maxAge,
		logger: logger,
		nowFn:  time.Now,
	}, nil
}

// Get returns the cached records for a fingerprint on a fresh hit
func (c *BadgerCache) Get(fingerprint string) ([]models.Restaurant, bool) {
	var entry CachedSearch
	err := c.store.Get(fingerprint, &entry)
	if err == badgerhold.ErrNotFound {
		return nil, false
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("fingerprint", fingerprint).Msg("Cache read failed")
		return nil, false
	}

	if c.nowFn().Sub(entry.CreatedAt) > c.maxAge {
		c.logger.Debug().
			Str("fingerprint", fingerprint).
			Msg("Cache entry is stale")
		return nil, false
	}

	c.logger.Debug().
		Str("fingerprint", fingerprint).
		Int("records", len(entry.Records)).
		Msg("Cache hit")

	return entry.Records, true
}

// Put stores records under a fingerprint, replacing any prior entry
func (c *BadgerCache) Put(fingerprint string, records []models.Restaurant) error {
	entry := CachedSearch{
		Fingerprint: fingerprint,
		Records:     records,
		CreatedAt:   c.nowFn(),
	}

	if err := c.store.Upsert(fingerprint, &entry); err != nil {
		return fmt.Errorf("failed to cache search results: %w", err)
	}

	c.logger.Debug().
		Str("fingerprint", fingerprint).
		Int("records", len(records)).
		Msg("Cached search results")

	return nil
}

// Clear removes all entries, fresh and stale alike
func (c *BadgerCache) Clear() error {
	if err := c.store.DeleteMatching(&CachedSearch{}, &badgerhold.Query{}); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	c.logger.Info().Msg("Cache cleared")
	return nil
}

// Close closes the underlying store
func (c *BadgerCache) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
