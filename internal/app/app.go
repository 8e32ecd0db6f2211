package app

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/taberna/internal/common"
	"github.com/ternarybob/taberna/internal/handlers"
	"github.com/ternarybob/taberna/internal/interfaces"
	"github.com/ternarybob/taberna/internal/providers/google"
	"github.com/ternarybob/taberna/internal/providers/yelp"
	"github.com/ternarybob/taberna/internal/services/aggregator"
	"github.com/ternarybob/taberna/internal/services/cache"
	"github.com/ternarybob/taberna/internal/services/events"
	"github.com/ternarybob/taberna/internal/services/summary"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Core services
	EventService      interfaces.EventService
	CacheService      interfaces.CacheService
	AggregatorService interfaces.AggregatorService
	SummaryService    interfaces.SummaryService
	Providers         []interfaces.Provider

	// HTTP handlers
	APIHandler        *handlers.APIHandler
	SearchHandler     *handlers.SearchHandler
	ContextHandler    *handlers.ContextHandler
	RestaurantHandler *handlers.RestaurantHandler
	CacheHandler      *handlers.CacheHandler
	WSHandler         *handlers.WebSocketHandler
}

// New creates and wires the application
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	if err := a.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	a.initHandlers()

	logger.Info().
		Int("providers", len(a.Providers)).
		Str("cache_backend", cfg.Cache.Backend).
		Msg("Application initialized")

	return a, nil
}

func (a *App) initServices() error {
	a.EventService = events.NewService(a.Logger)

	cacheService, err := a.newCacheService()
	if err != nil {
		return err
	}
	a.CacheService = cacheService

	// A provider is only registered when its API key is present; a search
	// with no registered providers reports a configuration error instead
	// of failing outright.
	if a.Config.Google.APIKey != "" {
		a.Providers = append(a.Providers, google.NewClient(&a.Config.Google, a.Logger))
	} else {
		a.Logger.Warn().Msg("Google Places API key not configured, provider disabled")
	}
	if a.Config.Yelp.APIKey != "" {
		a.Providers = append(a.Providers, yelp.NewClient(&a.Config.Yelp, a.Logger))
	} else {
		a.Logger.Warn().Msg("Yelp API key not configured, provider disabled")
	}

	a.AggregatorService = aggregator.NewService(&a.Config.Aggregator, a.Providers, a.CacheService, a.Logger)
	a.SummaryService = summary.NewService(a.Config.Aggregator.ContextLimit, a.Logger)

	return nil
}

func (a *App) newCacheService() (interfaces.CacheService, error) {
	switch a.Config.Cache.Backend {
	case "badger":
		return cache.NewBadgerCache(a.Config.Cache.Path, a.Config.Cache.MaxAge.Duration, a.Logger)
	case "", "memory":
		return cache.NewMemoryCache(a.Config.Cache.MaxAge.Duration, a.Logger), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", a.Config.Cache.Backend)
	}
}

func (a *App) initHandlers() {
	a.APIHandler = handlers.NewAPIHandler()
	a.SearchHandler = handlers.NewSearchHandler(a.AggregatorService, a.EventService, a.Logger)
	a.ContextHandler = handlers.NewContextHandler(a.AggregatorService, a.SummaryService, a.Logger)
	a.RestaurantHandler = handlers.NewRestaurantHandler(a.AggregatorService, a.Logger)
	a.CacheHandler = handlers.NewCacheHandler(a.AggregatorService, a.EventService, a.Logger)
	a.WSHandler = handlers.NewWebSocketHandler(a.EventService, a.Logger)
}

// Close releases application resources in reverse dependency order
func (a *App) Close() error {
	var firstErr error

	if a.EventService != nil {
		if err := a.EventService.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close event service")
			firstErr = err
		}
	}

	if a.CacheService != nil {
		if err := a.CacheService.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close cache service")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	a.Logger.Info().Msg("Application closed")
	return firstErr
}
