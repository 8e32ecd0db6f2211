package interfaces

import "github.com/ternarybob/taberna/internal/models"

// SummaryService renders restaurant lists as bounded plain-text context
// for a downstream conversational layer.
type SummaryService interface {
	// BuildContext renders at most limit entries in input order.
	// A non-positive limit falls back to the configured default.
	BuildContext(restaurants []models.Restaurant, limit int) string

	// TodayHours returns the display hours for the current weekday,
	// or an empty string when unknown.
	TodayHours(restaurant *models.Restaurant) string
}
