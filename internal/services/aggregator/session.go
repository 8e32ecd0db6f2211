package aggregator

import (
	"strings"

	"github.com/ternarybob/taberna/internal/common"
	"github.com/ternarybob/taberna/internal/models"
)

// session accumulates the merge for one search. Provider result sets are
// applied sequentially in provider registration order after the fan-out
// joins, so the merged content is independent of goroutine completion
// order; matching is a direct comparison against already-merged records,
// not a clustering pass.
type session struct {
	proximityThreshold float64

	records []models.Restaurant
	errors  []*models.ProviderError
}

func newSession(proximityThreshold float64) *session {
	return &session{
		proximityThreshold: proximityThreshold,
	}
}

// addResults merges one provider's records into the working set.
func (s *session) addResults(results []models.Restaurant) {
	for _, incoming := range results {
		if !incoming.HasIdentity() {
			continue
		}
		if existing := s.findMatch(incoming); existing != nil {
			existing.Merge(incoming)
		} else {
			s.records = append(s.records, incoming)
		}
	}
}

// addError records a provider failure without disturbing the record set.
func (s *session) addError(err *models.ProviderError) {
	s.errors = append(s.errors, err)
}

// findMatch returns the first merged record representing the same
// restaurant: case-insensitive name equality, or coordinates within
// the proximity threshold.
func (s *session) findMatch(incoming models.Restaurant) *models.Restaurant {
	for i := range s.records {
		candidate := &s.records[i]

		if incoming.Name != "" && strings.EqualFold(candidate.Name, incoming.Name) {
			return candidate
		}

		if hasCoordinates(candidate) && hasCoordinates(&incoming) {
			distance := common.HaversineDistance(
				candidate.Latitude, candidate.Longitude,
				incoming.Latitude, incoming.Longitude,
			)
			if distance < s.proximityThreshold {
				return candidate
			}
		}
	}
	return nil
}

// results returns the merged record set and accumulated errors.
func (s *session) results() ([]models.Restaurant, []*models.ProviderError) {
	return s.records, s.errors
}

func hasCoordinates(r *models.Restaurant) bool {
	return r.Latitude != 0 || r.Longitude != 0
}
