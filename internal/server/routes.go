package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// WebSocket route
	mux.HandleFunc("/ws", s.app.WSHandler.HandleWebSocket)

	// API routes - Search
	mux.HandleFunc("/api/search", s.app.SearchHandler.SearchHandler)    // POST - aggregated restaurant search
	mux.HandleFunc("/api/context", s.app.ContextHandler.ContextHandler) // POST - bounded text context

	// API routes - Restaurants
	mux.HandleFunc("/api/restaurants/", s.app.RestaurantHandler.DetailsHandler) // GET /{id}?source=

	// API routes - Cache
	mux.HandleFunc("/api/cache/clear", s.app.CacheHandler.ClearHandler) // POST - purge all entries

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}
