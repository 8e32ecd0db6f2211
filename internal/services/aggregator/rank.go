package aggregator

import (
	"math"
	"sort"

	"github.com/ternarybob/taberna/internal/models"
)

// RankByRelevance sorts restaurants in place: rating descending, with
// review count breaking ties between ratings within tolerance of each
// other. The sort is stable so equal records keep their merge order.
func RankByRelevance(restaurants []models.Restaurant, ratingTolerance float64) {
	sort.SliceStable(restaurants, func(i, j int) bool {
		a, b := restaurants[i], restaurants[j]
		if math.Abs(a.Rating-b.Rating) > ratingTolerance {
			return a.Rating > b.Rating
		}
		return a.ReviewCount > b.ReviewCount
	})
}
