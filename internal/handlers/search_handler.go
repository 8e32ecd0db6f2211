package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/taberna/internal/common"
	"github.com/ternarybob/taberna/internal/interfaces"
	"github.com/ternarybob/taberna/internal/models"
)

// SearchRequest is the POST /api/search request body
type SearchRequest struct {
	Location models.Location      `json:"location" validate:"required"`
	Filters  models.SearchFilters `json:"filters"`
}

// SearchResponse is the POST /api/search response body
type SearchResponse struct {
	SearchID    string                  `json:"search_id"`
	Restaurants []models.Restaurant     `json:"restaurants"`
	Count       int                     `json:"count"`
	Errors      []*models.ProviderError `json:"errors,omitempty"`
	FromCache   bool                    `json:"fromCache"`
}

// SearchHandler serves aggregated restaurant searches
type SearchHandler struct {
	aggregator   interfaces.AggregatorService
	eventService interfaces.EventService
	validate     *validator.Validate
	logger       arbor.ILogger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(aggregator interfaces.AggregatorService, eventService interfaces.EventService, logger arbor.ILogger) *SearchHandler {
	return &SearchHandler{
		aggregator:   aggregator,
		eventService: eventService,
		validate:     validator.New(),
		logger:       logger,
	}
}

// SearchHandler handles POST /api/search
func (h *SearchHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	req, ok := h.decodeSearchRequest(w, r)
	if !ok {
		return
	}

	searchID := uuid.New().String()

	result, err := h.aggregator.Search(r.Context(), req.Location, req.Filters)
	if err != nil {
		h.logger.Error().Str("search_id", searchID).Err(err).Msg("Search failed")
		WriteError(w, http.StatusInternalServerError, "search failed")
		return
	}

	h.logger.Info().
		Str("search_id", searchID).
		Int("count", len(result.Restaurants)).
		Int("provider_errors", len(result.Errors)).
		Bool("from_cache", result.FromCache).
		Msg("Search completed")

	h.publishSearchEvents(searchID, result)

	WriteJSON(w, http.StatusOK, SearchResponse{
		SearchID:    searchID,
		Restaurants: result.Restaurants,
		Count:       len(result.Restaurants),
		Errors:      result.Errors,
		FromCache:   result.FromCache,
	})
}

// decodeSearchRequest parses and validates the shared search request body.
func (h *SearchHandler) decodeSearchRequest(w http.ResponseWriter, r *http.Request) (*SearchRequest, bool) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Debug().Err(err).Msg("Search request failed validation")
		WriteError(w, http.StatusBadRequest, "invalid search parameters: "+err.Error())
		return nil, false
	}

	return &req, true
}

// publishSearchEvents mirrors the search outcome onto the event bus so
// websocket clients see results and provider failures as they happen.
func (h *SearchHandler) publishSearchEvents(searchID string, result *interfaces.SearchResult) {
	if h.eventService == nil {
		return
	}

	common.SafeGo(h.logger, "publishSearchEvents", func() {
		ctx := context.Background()

		h.eventService.Publish(ctx, interfaces.Event{
			Type: interfaces.EventRestaurantsFound,
			Payload: map[string]interface{}{
				"search_id": searchID,
				"count":     len(result.Restaurants),
				"fromCache": result.FromCache,
			},
		})

		for _, provErr := range result.Errors {
			h.eventService.Publish(ctx, interfaces.Event{
				Type: interfaces.EventAPIError,
				Payload: map[string]interface{}{
					"search_id": searchID,
					"provider":  provErr.Provider,
					"kind":      string(provErr.Kind),
					"message":   provErr.Message,
				},
			})
		}
	})
}
