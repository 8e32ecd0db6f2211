package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/taberna/internal/interfaces"
	"github.com/ternarybob/taberna/internal/models"
)

// ContextRequest is the POST /api/context request body
type ContextRequest struct {
	Location models.Location      `json:"location" validate:"required"`
	Filters  models.SearchFilters `json:"filters"`
	Limit    int                  `json:"limit" validate:"gte=0"`
}

// ContextResponse is the POST /api/context response body
type ContextResponse struct {
	Context string                  `json:"context"`
	Count   int                     `json:"count"`
	Errors  []*models.ProviderError `json:"errors,omitempty"`
}

// ContextHandler renders the bounded plain-text restaurant context
type ContextHandler struct {
	aggregator interfaces.AggregatorService
	summary    interfaces.SummaryService
	validate   *validator.Validate
	logger     arbor.ILogger
}

// NewContextHandler creates a new context handler
func NewContextHandler(aggregator interfaces.AggregatorService, summary interfaces.SummaryService, logger arbor.ILogger) *ContextHandler {
	return &ContextHandler{
		aggregator: aggregator,
		summary:    summary,
		validate:   validator.New(),
		logger:     logger,
	}
}

// ContextHandler handles POST /api/context
func (h *ContextHandler) ContextHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req ContextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid context parameters: "+err.Error())
		return
	}

	result, err := h.aggregator.Search(r.Context(), req.Location, req.Filters)
	if err != nil {
		h.logger.Error().Err(err).Msg("Context search failed")
		WriteError(w, http.StatusInternalServerError, "search failed")
		return
	}

	text := h.summary.BuildContext(result.Restaurants, req.Limit)

	WriteJSON(w, http.StatusOK, ContextResponse{
		Context: text,
		Count:   len(result.Restaurants),
		Errors:  result.Errors,
	})
}
