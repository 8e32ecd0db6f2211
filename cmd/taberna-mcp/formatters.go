package main

import (
	"fmt"
	"strings"

	"github.com/ternarybob/taberna/internal/interfaces"
	"github.com/ternarybob/taberna/internal/models"
)

// formatSearchResults formats the merged search results as markdown
func formatSearchResults(result *interfaces.SearchResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Restaurants Found (%d results)\n\n", len(result.Restaurants)))
	if result.FromCache {
		sb.WriteString("_Served from cache._\n\n")
	}

	if len(result.Restaurants) == 0 {
		sb.WriteString("No restaurants found.\n")
	}

	for i, r := range result.Restaurants {
		sb.WriteString(fmt.Sprintf("### %d. %s\n", i+1, r.Name))
		if len(r.CuisineTypes) > 0 {
			sb.WriteString(fmt.Sprintf("**Cuisine:** %s\n", strings.Join(r.CuisineTypes, ", ")))
		}
		if r.PriceLevel != "" {
			sb.WriteString(fmt.Sprintf("**Price:** %s\n", r.PriceLevel))
		}
		if r.Rating > 0 {
			sb.WriteString(fmt.Sprintf("**Rating:** %.1f/5.0", r.Rating))
			if r.ReviewCount > 0 {
				sb.WriteString(fmt.Sprintf(" (%d reviews)", r.ReviewCount))
			}
			sb.WriteString("\n")
		}
		if r.Address != "" {
			sb.WriteString(fmt.Sprintf("**Address:** %s\n", r.Address))
		}
		if r.GooglePlaceID != "" {
			sb.WriteString(fmt.Sprintf("**Google ID:** %s\n", r.GooglePlaceID))
		}
		if r.YelpBusinessID != "" {
			sb.WriteString(fmt.Sprintf("**Yelp ID:** %s\n", r.YelpBusinessID))
		}
		sb.WriteString("\n")
	}

	if len(result.Errors) > 0 {
		sb.WriteString("## Provider Errors\n\n")
		for _, provErr := range result.Errors {
			sb.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", provErr.Provider, provErr.Kind, provErr.Message))
		}
	}

	return sb.String()
}

// formatRestaurant formats a single restaurant record as markdown
func formatRestaurant(r *models.Restaurant) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", r.Name))

	if len(r.CuisineTypes) > 0 {
		sb.WriteString(fmt.Sprintf("**Cuisine:** %s\n", strings.Join(r.CuisineTypes, ", ")))
	}
	if r.PriceLevel != "" {
		sb.WriteString(fmt.Sprintf("**Price:** %s\n", r.PriceLevel))
	}
	if r.Rating > 0 {
		sb.WriteString(fmt.Sprintf("**Rating:** %.1f/5.0", r.Rating))
		if r.ReviewCount > 0 {
			sb.WriteString(fmt.Sprintf(" (%d reviews)", r.ReviewCount))
		}
		sb.WriteString("\n")
	}
	if r.Address != "" {
		sb.WriteString(fmt.Sprintf("**Address:** %s\n", r.Address))
	}
	if r.PhoneNumber != "" {
		sb.WriteString(fmt.Sprintf("**Phone:** %s\n", r.PhoneNumber))
	}
	if r.Website != "" {
		sb.WriteString(fmt.Sprintf("**Website:** %s\n", r.Website))
	}

	var services []string
	if r.AcceptsReservations {
		services = append(services, "reservations")
	}
	if r.Takeout {
		services = append(services, "takeout")
	}
	if r.Delivery {
		services = append(services, "delivery")
	}
	if len(services) > 0 {
		sb.WriteString(fmt.Sprintf("**Services:** %s\n", strings.Join(services, ", ")))
	}

	switch {
	case r.Hours.TemporarilyClosed:
		sb.WriteString("\n**Hours:** Temporarily closed\n")
	case r.Hours.Open24Hours:
		sb.WriteString("\n**Hours:** Open 24 hours\n")
	case len(r.Hours.WeeklyHours) > 0:
		sb.WriteString("\n## Hours\n\n")
		for _, day := range models.Weekdays {
			if hours, ok := r.Hours.WeeklyHours[day]; ok {
				sb.WriteString(fmt.Sprintf("- %s: %s\n", day, hours))
			}
		}
	}

	return sb.String()
}
