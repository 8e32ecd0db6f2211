package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"

	"github.com/ternarybob/taberna/internal/common"
	"github.com/ternarybob/taberna/internal/interfaces"
	"github.com/ternarybob/taberna/internal/providers/google"
	"github.com/ternarybob/taberna/internal/providers/yelp"
	"github.com/ternarybob/taberna/internal/services/aggregator"
	"github.com/ternarybob/taberna/internal/services/cache"
	"github.com/ternarybob/taberna/internal/services/summary"
)

func main() {
	configPath := os.Getenv("TABERNA_CONFIG")
	if configPath == "" {
		configPath = "taberna.toml"
	}

	config, err := common.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Minimal logging to avoid cluttering MCP stdio
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:             arbor_models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn")

	var providers []interfaces.Provider
	if config.Google.APIKey != "" {
		providers = append(providers, google.NewClient(&config.Google, logger))
	}
	if config.Yelp.APIKey != "" {
		providers = append(providers, yelp.NewClient(&config.Yelp, logger))
	}

	cacheService, err := newCacheService(config, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open cache: %v\n", err)
		os.Exit(1)
	}
	defer cacheService.Close()

	aggregatorService := aggregator.NewService(&config.Aggregator, providers, cacheService, logger)
	summaryService := summary.NewService(config.Aggregator.ContextLimit, logger)

	mcpServer := server.NewMCPServer(
		"taberna",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createSearchRestaurantsTool(), handleSearchRestaurants(aggregatorService, logger))
	mcpServer.AddTool(createRestaurantContextTool(), handleRestaurantContext(aggregatorService, summaryService, logger))
	mcpServer.AddTool(createRestaurantDetailsTool(), handleRestaurantDetails(aggregatorService, logger))
	mcpServer.AddTool(createClearCacheTool(), handleClearCache(aggregatorService, logger))

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}

func newCacheService(config *common.Config, logger arbor.ILogger) (interfaces.CacheService, error) {
	switch config.Cache.Backend {
	case "badger":
		return cache.NewBadgerCache(config.Cache.Path, config.Cache.MaxAge.Duration, logger)
	case "", "memory":
		return cache.NewMemoryCache(config.Cache.MaxAge.Duration, logger), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", config.Cache.Backend)
	}
}
