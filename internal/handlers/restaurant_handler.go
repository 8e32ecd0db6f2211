package handlers

import (
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/taberna/internal/interfaces"
	"github.com/ternarybob/taberna/internal/models"
	"github.com/ternarybob/taberna/internal/providers/google"
	"github.com/ternarybob/taberna/internal/providers/yelp"
)

// RestaurantHandler serves single-restaurant detail lookups
type RestaurantHandler struct {
	aggregator interfaces.AggregatorService
	logger     arbor.ILogger
}

// NewRestaurantHandler creates a new restaurant detail handler
func NewRestaurantHandler(aggregator interfaces.AggregatorService, logger arbor.ILogger) *RestaurantHandler {
	return &RestaurantHandler{
		aggregator: aggregator,
		logger:     logger,
	}
}

// DetailsHandler handles GET /api/restaurants/{id}?source=google|yelp
func (h *RestaurantHandler) DetailsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/restaurants/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, http.StatusBadRequest, "restaurant id required")
		return
	}

	providerName, ok := resolveSource(r.URL.Query().Get("source"))
	if !ok {
		WriteError(w, http.StatusBadRequest, "source must be google or yelp")
		return
	}

	restaurant, err := h.aggregator.Details(r.Context(), providerName, id)
	if err != nil {
		provErr := models.AsProviderError(providerName, err)
		h.logger.Warn().
			Str("provider", providerName).
			Str("id", id).
			Err(err).
			Msg("Restaurant details lookup failed")
		WriteJSON(w, http.StatusBadGateway, map[string]interface{}{
			"status": "error",
			"error":  provErr,
		})
		return
	}

	WriteJSON(w, http.StatusOK, restaurant)
}

// resolveSource maps the public source names onto provider identifiers.
func resolveSource(source string) (string, bool) {
	switch strings.ToLower(source) {
	case "google", "googleplaces":
		return google.ProviderName, true
	case "yelp":
		return yelp.ProviderName, true
	default:
		return "", false
	}
}
