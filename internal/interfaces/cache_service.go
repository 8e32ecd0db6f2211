package interfaces

import "github.com/ternarybob/taberna/internal/models"

// CacheService stores search results keyed by query fingerprint.
// Entries older than the configured max age are treated as misses but
// are not deleted until Clear is called.
type CacheService interface {
	// Get returns the cached records for a fingerprint and true on a
	// fresh hit. Stale or missing entries return nil and false. The
	// returned slice is the caller's to mutate; the cached set is
	// unaffected.
	Get(fingerprint string) ([]models.Restaurant, bool)

	// Put stores records under a fingerprint, replacing any prior entry.
	Put(fingerprint string, records []models.Restaurant) error

	// Clear removes all entries, fresh and stale alike.
	Clear() error

	// Close releases any underlying storage resources.
	Close() error
}
