package handlers

import (
	"context"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/taberna/internal/common"
	"github.com/ternarybob/taberna/internal/interfaces"
)

// CacheHandler exposes cache management operations
type CacheHandler struct {
	aggregator   interfaces.AggregatorService
	eventService interfaces.EventService
	logger       arbor.ILogger
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(aggregator interfaces.AggregatorService, eventService interfaces.EventService, logger arbor.ILogger) *CacheHandler {
	return &CacheHandler{
		aggregator:   aggregator,
		eventService: eventService,
		logger:       logger,
	}
}

// ClearHandler handles POST /api/cache/clear
func (h *CacheHandler) ClearHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	if err := h.aggregator.ClearCache(); err != nil {
		h.logger.Error().Err(err).Msg("Cache clear failed")
		WriteError(w, http.StatusInternalServerError, "failed to clear cache")
		return
	}

	if h.eventService != nil {
		common.SafeGo(h.logger, "publishCacheCleared", func() {
			h.eventService.Publish(context.Background(), interfaces.Event{
				Type: interfaces.EventCacheCleared,
			})
		})
	}

	WriteSuccess(w, "cache cleared")
}
