package aggregator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/taberna/internal/common"
	"github.com/ternarybob/taberna/internal/interfaces"
	"github.com/ternarybob/taberna/internal/models"
)

// Service implements the AggregatorService interface
type Service struct {
	config    *common.AggregatorConfig
	providers []interfaces.Provider
	cache     interfaces.CacheService
	logger    arbor.ILogger
}

// NewService creates the aggregation service over the configured providers
func NewService(
	config *common.AggregatorConfig,
	providers []interfaces.Provider,
	cache interfaces.CacheService,
	logger arbor.ILogger,
) interfaces.AggregatorService {
	return &Service{
		config:    config,
		providers: providers,
		cache:     cache,
		logger:    logger,
	}
}

// Search fans out to every configured provider concurrently, merges the
// results into one de-duplicated list, ranks it, and caches it by the
// search fingerprint. Provider failures are collected, never fatal: the
// caller always gets whatever records the healthy providers returned.
func (s *Service) Search(ctx context.Context, location models.Location, filters models.SearchFilters) (*interfaces.SearchResult, error) {
	filters = filters.Normalized()
	fingerprint := Fingerprint(location, filters)

	if records, ok := s.cache.Get(fingerprint); ok {
		s.logger.Info().
			Str("fingerprint", fingerprint).
			Int("records", len(records)).
			Msg("Serving search from cache")
		return &interfaces.SearchResult{
			Restaurants: records,
			FromCache:   true,
		}, nil
	}

	if len(s.providers) == 0 {
		s.logger.Warn().Msg("Search attempted with no providers configured")
		return &interfaces.SearchResult{
			Restaurants: []models.Restaurant{},
			Errors: []*models.ProviderError{
				models.NewConfigurationError("no restaurant data providers configured"),
			},
		}, nil
	}

	s.logger.Info().
		Str("location", fmt.Sprintf("%f,%f", location.Latitude, location.Longitude)).
		Int("providers", len(s.providers)).
		Msg("Starting restaurant search")

	// Join barrier: every provider reports, success or failure, before
	// the merge runs. Outcomes land in per-provider slots so the merge
	// applies them in registration order; the final content does not
	// depend on which goroutine finished first.
	outcomes := make([]providerOutcome, len(s.providers))
	var wg sync.WaitGroup
	for i, provider := range s.providers {
		wg.Add(1)
		go func(slot int, p interfaces.Provider) {
			defer wg.Done()
			outcomes[slot] = s.queryProvider(ctx, p, location, filters)
		}(i, provider)
	}
	wg.Wait()

	sess := newSession(s.config.ProximityThreshold)
	for _, outcome := range outcomes {
		if outcome.err != nil {
			sess.addError(outcome.err)
			continue
		}
		sess.addResults(outcome.records)
	}

	records, provErrors := sess.results()
	if records == nil {
		records = []models.Restaurant{}
	}

	RankByRelevance(records, s.config.RatingTieTolerance)

	// A cancelled search must not poison the cache with a partial set.
	if ctx.Err() == nil {
		if err := s.cache.Put(fingerprint, records); err != nil {
			s.logger.Warn().Err(err).Str("fingerprint", fingerprint).Msg("Failed to cache search results")
		}
	}

	s.logger.Info().
		Int("records", len(records)).
		Int("provider_errors", len(provErrors)).
		Msg("Search complete")

	return &interfaces.SearchResult{
		Restaurants: records,
		Errors:      provErrors,
	}, nil
}

// providerOutcome is the result slot one provider goroutine fills in.
type providerOutcome struct {
	records []models.Restaurant
	err     *models.ProviderError
}

// queryProvider runs one provider call under its own timeout.
func (s *Service) queryProvider(ctx context.Context, provider interfaces.Provider, location models.Location, filters models.SearchFilters) providerOutcome {
	callCtx, cancel := context.WithTimeout(ctx, s.config.ProviderTimeout.Duration)
	defer cancel()

	results, err := provider.Search(callCtx, location, filters)
	if err != nil {
		provErr := models.AsProviderError(provider.Name(), err)
		s.logger.Warn().
			Str("provider", provider.Name()).
			Str("kind", string(provErr.Kind)).
			Err(err).
			Msg("Provider search failed")
		return providerOutcome{err: provErr}
	}

	s.logger.Debug().
		Str("provider", provider.Name()).
		Int("results", len(results)).
		Msg("Provider search completed")

	return providerOutcome{records: results}
}

// Details fetches a single restaurant from the named provider.
func (s *Service) Details(ctx context.Context, providerName, id string) (*models.Restaurant, error) {
	for _, provider := range s.providers {
		if strings.EqualFold(provider.Name(), providerName) {
			callCtx, cancel := context.WithTimeout(ctx, s.config.ProviderTimeout.Duration)
			defer cancel()
			return provider.Details(callCtx, id)
		}
	}
	return nil, fmt.Errorf("unknown provider: %s", providerName)
}

// ClearCache discards all cached search results.
func (s *Service) ClearCache() error {
	return s.cache.Clear()
}
