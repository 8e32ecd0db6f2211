package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/taberna/internal/interfaces"
	"github.com/ternarybob/taberna/internal/models"
	"github.com/ternarybob/taberna/internal/providers/google"
	"github.com/ternarybob/taberna/internal/providers/yelp"
)

// handleSearchRestaurants implements the search_restaurants tool
func handleSearchRestaurants(aggregatorService interfaces.AggregatorService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		location, errResult := parseLocation(request)
		if errResult != nil {
			return errResult, nil
		}

		filters := models.SearchFilters{
			CuisineTypes: request.GetStringSlice("cuisine_types", nil),
			MinRating:    request.GetFloat("min_rating", 0),
			MaxDistance:  request.GetFloat("max_distance", 0),
			OpenNow:      request.GetBool("open_now", false),
		}

		result, err := aggregatorService.Search(ctx, location, filters)
		if err != nil {
			logger.Error().Err(err).Msg("Search failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Search error: %v", err)),
				},
			}, nil
		}

		markdown := formatSearchResults(result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}

// handleRestaurantContext implements the restaurant_context tool
func handleRestaurantContext(aggregatorService interfaces.AggregatorService, summaryService interfaces.SummaryService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		location, errResult := parseLocation(request)
		if errResult != nil {
			return errResult, nil
		}

		filters := models.SearchFilters{
			CuisineTypes: request.GetStringSlice("cuisine_types", nil),
		}
		limit := request.GetInt("limit", 0)

		result, err := aggregatorService.Search(ctx, location, filters)
		if err != nil {
			logger.Error().Err(err).Msg("Context search failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Search error: %v", err)),
				},
			}, nil
		}

		text := summaryService.BuildContext(result.Restaurants, limit)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(text),
			},
		}, nil
	}
}

// handleRestaurantDetails implements the restaurant_details tool
func handleRestaurantDetails(aggregatorService interfaces.AggregatorService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		source, err := request.RequireString("source")
		if err != nil || source == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: source parameter is required (google or yelp)"),
				},
			}, nil
		}

		id, err := request.RequireString("id")
		if err != nil || id == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: id parameter is required"),
				},
			}, nil
		}

		providerName, ok := resolveSource(source)
		if !ok {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Error: unknown source %q (expected google or yelp)", source)),
				},
			}, nil
		}

		restaurant, err := aggregatorService.Details(ctx, providerName, id)
		if err != nil {
			logger.Error().Err(err).Str("source", source).Str("id", id).Msg("Details lookup failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Details error: %v", err)),
				},
			}, nil
		}

		markdown := formatRestaurant(restaurant)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}

// handleClearCache implements the clear_cache tool
func handleClearCache(aggregatorService interfaces.AggregatorService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := aggregatorService.ClearCache(); err != nil {
			logger.Error().Err(err).Msg("Cache clear failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Cache clear error: %v", err)),
				},
			}, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Cache cleared. The next search will query the providers directly."),
			},
		}, nil
	}
}

// parseLocation extracts and validates the latitude/longitude parameters
// shared by the search tools. A non-nil result is an error to return as-is.
func parseLocation(request mcp.CallToolRequest) (models.Location, *mcp.CallToolResult) {
	latitude, err := request.RequireFloat("latitude")
	if err != nil {
		return models.Location{}, &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Error: latitude parameter is required"),
			},
		}
	}
	longitude, err := request.RequireFloat("longitude")
	if err != nil {
		return models.Location{}, &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Error: longitude parameter is required"),
			},
		}
	}

	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return models.Location{}, &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Error: latitude must be -90..90 and longitude -180..180"),
			},
		}
	}

	return models.Location{Latitude: latitude, Longitude: longitude}, nil
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
