package aggregator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ternarybob/taberna/internal/models"
)

// Fingerprint derives the deterministic cache key for a search.
// Coordinates round to 4 decimal degrees (~11m) so near-identical
// searches share an entry; the cuisine list is sorted so ordering
// differences do not split the key.
func Fingerprint(location models.Location, filters models.SearchFilters) string {
	filters = filters.Normalized()

	cuisines := make([]string, len(filters.CuisineTypes))
	copy(cuisines, filters.CuisineTypes)
	sort.Strings(cuisines)

	return fmt.Sprintf("%.4f_%.4f_%s_%f_%f",
		location.Latitude,
		location.Longitude,
		strings.Join(cuisines, ","),
		filters.MinRating,
		filters.MaxDistance,
	)
}
