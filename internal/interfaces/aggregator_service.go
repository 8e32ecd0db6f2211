// Package interfaces provides service interfaces for dependency injection.
package interfaces

import (
	"context"

	"github.com/ternarybob/taberna/internal/models"
)

// SearchResult holds the outcome of an aggregated search. Records and
// Errors are independent: a partial provider failure still yields records
// from the providers that succeeded.
type SearchResult struct {
	Restaurants []models.Restaurant     `json:"restaurants"`
	Errors      []*models.ProviderError `json:"errors,omitempty"`
	FromCache   bool                    `json:"fromCache"`
}

// AggregatorService coordinates concurrent provider queries, merges the
// results, and serves repeat searches from cache.
type AggregatorService interface {
	// Search runs the query against all configured providers and returns
	// merged, ranked results. Provider failures are reported through the
	// result's Errors field, never as the returned error.
	Search(ctx context.Context, location models.Location, filters models.SearchFilters) (*SearchResult, error)

	// Details fetches a single restaurant from a named provider.
	Details(ctx context.Context, provider, id string) (*models.Restaurant, error)

	// ClearCache discards all cached search results.
	ClearCache() error
}
