package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createSearchRestaurantsTool returns the search_restaurants tool definition
func createSearchRestaurantsTool() mcp.Tool {
	return mcp.NewTool("search_restaurants",
		mcp.WithDescription("Search for restaurants near a location across Google Places and Yelp, merged and ranked by rating"),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("Latitude of the search center (-90 to 90)"),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("Longitude of the search center (-180 to 180)"),
		),
		mcp.WithArray("cuisine_types",
			mcp.WithStringItems(),
			mcp.Description("Cuisine keywords to filter by, e.g. italian, sushi"),
		),
		mcp.WithNumber("min_rating",
			mcp.Description("Minimum rating 0-5 (default: 0)"),
		),
		mcp.WithNumber("max_distance",
			mcp.Description("Search radius in meters (default: 5000)"),
		),
		mcp.WithBoolean("open_now",
			mcp.Description("Only include restaurants currently open"),
		),
	)
}

// createRestaurantContextTool returns the restaurant_context tool definition
func createRestaurantContextTool() mcp.Tool {
	return mcp.NewTool("restaurant_context",
		mcp.WithDescription("Build a compact plain-text summary of nearby restaurants suitable for prompt context"),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("Latitude of the search center (-90 to 90)"),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("Longitude of the search center (-180 to 180)"),
		),
		mcp.WithArray("cuisine_types",
			mcp.WithStringItems(),
			mcp.Description("Cuisine keywords to filter by"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum entries in the summary (default: 10)"),
		),
	)
}

// createRestaurantDetailsTool returns the restaurant_details tool definition
func createRestaurantDetailsTool() mcp.Tool {
	return mcp.NewTool("restaurant_details",
		mcp.WithDescription("Retrieve full details for a single restaurant from its source provider"),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("Provider that owns the id: google or yelp"),
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Provider-specific restaurant identifier (Google place_id or Yelp business id)"),
		),
	)
}

// createClearCacheTool returns the clear_cache tool definition
func createClearCacheTool() mcp.Tool {
	return mcp.NewTool("clear_cache",
		mcp.WithDescription("Discard all cached search results so the next search queries the providers again"),
	)
}
