package interfaces

import (
	"context"

	"github.com/ternarybob/taberna/internal/models"
)

// Provider defines the interface for an upstream restaurant data source.
// Implementations translate provider-specific payloads into the unified
// restaurant model and report failures as *models.ProviderError.
type Provider interface {
	// Name returns the provider identifier used in logs and error reports.
	Name() string

	// Search queries the provider for restaurants near a location.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout control
	//   - location: Center point of the search
	//   - filters: Search constraints (cuisines, rating, radius)
	//
	// Returns:
	//   - []models.Restaurant: Normalized restaurant records
	//   - error: *models.ProviderError if the request fails
	Search(ctx context.Context, location models.Location, filters models.SearchFilters) ([]models.Restaurant, error)

	// Details fetches the full record for a single restaurant by its
	// provider-native identifier.
	Details(ctx context.Context, id string) (*models.Restaurant, error)
}
