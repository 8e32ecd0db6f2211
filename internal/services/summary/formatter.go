package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/taberna/internal/interfaces"
	"github.com/ternarybob/taberna/internal/models"
)

// DefaultContextLimit bounds the rendered context when no limit is configured.
const DefaultContextLimit = 10

// Service implements the SummaryService interface
type Service struct {
	defaultLimit int
	logger       arbor.ILogger

	// nowFn is swapped in tests to pin the weekday
	nowFn func() time.Time
}

// NewService creates the context formatter
func NewService(defaultLimit int, logger arbor.ILogger) interfaces.SummaryService {
	if defaultLimit <= 0 {
		defaultLimit = DefaultContextLimit
	}
	return &Service{
		defaultLimit: defaultLimit,
		logger:       logger,
		nowFn:        time.Now,
	}
}

// BuildContext renders a numbered plain-text digest of the restaurants,
// in input order, capped at limit entries. Absent fields are omitted
// rather than rendered as placeholders.
func (s *Service) BuildContext(restaurants []models.Restaurant, limit int) string {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > len(restaurants) {
		limit = len(restaurants)
	}

	var b strings.Builder
	b.WriteString("Available restaurants in the area:\n\n")

	for i := 0; i < limit; i++ {
		r := restaurants[i]

		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Name)

		if len(r.CuisineTypes) > 0 {
			fmt.Fprintf(&b, "   Cuisine: %s\n", strings.Join(r.CuisineTypes, ", "))
		}

		if r.PriceLevel != "" {
			fmt.Fprintf(&b, "   Price: %s\n", r.PriceLevel)
		}

		if r.Rating > 0 {
			fmt.Fprintf(&b, "   Rating: %.1f/5.0", r.Rating)
			if r.ReviewCount > 0 {
				fmt.Fprintf(&b, " (%d reviews)", r.ReviewCount)
			}
			b.WriteString("\n")
		}

		if r.Address != "" {
			fmt.Fprintf(&b, "   Address: %s\n", r.Address)
		}

		b.WriteString("\n")
	}

	return b.String()
}

// TodayHours returns the restaurant's display hours for today's weekday.
func (s *Service) TodayHours(restaurant *models.Restaurant) string {
	if restaurant.Hours.Open24Hours {
		return "Open 24 hours"
	}
	if restaurant.Hours.TemporarilyClosed {
		return "Temporarily closed"
	}
	if len(restaurant.Hours.WeeklyHours) == 0 {
		return ""
	}
	return restaurant.Hours.WeeklyHours[s.nowFn().Weekday().String()]
}
