package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/taberna/internal/common"
	"github.com/ternarybob/taberna/internal/models"
)

const (
	// ProviderName identifies this client in error reports and logs.
	ProviderName = "GooglePlaces"

	defaultBaseURL = "https://maps.googleapis.com/maps/api/place"
)

// HTTPClient abstracts the HTTP transport so tests can substitute a fake.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client queries the Google Places API and maps results into the
// unified restaurant model.
type Client struct {
	apiKey     string
	baseURL    string
	maxResults int
	httpClient HTTPClient
	limiter    *rate.Limiter
	logger     arbor.ILogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP transport.
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// NewClient creates a Google Places provider client
func NewClient(config *common.ProviderConfig, logger arbor.ILogger, opts ...Option) *Client {
	c := &Client{
		apiKey:     config.APIKey,
		baseURL:    defaultBaseURL,
		maxResults: config.MaxResults,
		httpClient: &http.Client{Timeout: config.RequestTimeout.Duration},
		limiter:    rate.NewLimiter(rate.Every(config.RateLimit.Duration), 1),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the provider identifier
func (c *Client) Name() string {
	return ProviderName
}

// Search performs a Google Places Nearby Search around the location
func (c *Client) Search(ctx context.Context, location models.Location, filters models.SearchFilters) ([]models.Restaurant, error) {
	if c.apiKey == "" {
		return nil, models.NewConfigurationError("Google Places API key not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &models.ProviderError{
			Provider: ProviderName,
			Kind:     models.ErrorKindNetwork,
			Message:  "rate limit wait cancelled",
			Cause:    err,
		}
	}

	filters = filters.Normalized()

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", location.Latitude, location.Longitude))
	params.Set("radius", fmt.Sprintf("%.0f", filters.MaxDistance))
	params.Set("type", "restaurant")
	if filters.OpenNow {
		params.Set("opennow", "true")
	}
	if len(filters.CuisineTypes) > 0 {
		// Space-separated keywords; Encode renders the separator as "+"
		params.Set("keyword", strings.Join(filters.CuisineTypes, " "))
	}
	params.Set("key", c.apiKey)

	requestURL := fmt.Sprintf("%s/nearbysearch/json?%s", c.baseURL, params.Encode())

	// Redact API key in logs
	c.logger.Debug().
		Str("url", fmt.Sprintf("%s/nearbysearch/json?location=%f,%f&radius=%.0f&key=***REDACTED***",
			c.baseURL, location.Latitude, location.Longitude, filters.MaxDistance)).
		Msg("Calling Google Places Nearby Search API")

	var apiResp nearbySearchResponse
	if err := c.doJSON(ctx, requestURL, &apiResp); err != nil {
		return nil, err
	}

	if apiResp.Status != "OK" && apiResp.Status != "ZERO_RESULTS" {
		return nil, apiStatusError(apiResp.Status, apiResp.ErrorMessage)
	}

	results := apiResp.Results
	if c.maxResults > 0 && len(results) > c.maxResults {
		results = results[:c.maxResults]
	}

	restaurants := make([]models.Restaurant, 0, len(results))
	for _, place := range results {
		restaurants = append(restaurants, convertPlace(place))
	}

	c.logger.Info().
		Int("results_count", len(restaurants)).
		Str("status", apiResp.Status).
		Msg("Google Places Nearby Search completed")

	return restaurants, nil
}

// Details fetches the full record for a single place ID
func (c *Client) Details(ctx context.Context, id string) (*models.Restaurant, error) {
	if c.apiKey == "" {
		return nil, models.NewConfigurationError("Google Places API key not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &models.ProviderError{
			Provider: ProviderName,
			Kind:     models.ErrorKindNetwork,
			Message:  "rate limit wait cancelled",
			Cause:    err,
		}
	}

	params := url.Values{}
	params.Set("place_id", id)
	params.Set("fields", "name,vicinity,formatted_address,geometry,rating,user_ratings_total,price_level,types,opening_hours,formatted_phone_number,website,reservable,takeout,delivery,place_id")
	params.Set("key", c.apiKey)

	requestURL := fmt.Sprintf("%s/details/json?%s", c.baseURL, params.Encode())

	c.logger.Debug().
		Str("place_id", id).
		Msg("Calling Google Places Details API")

	var apiResp detailsResponse
	if err := c.doJSON(ctx, requestURL, &apiResp); err != nil {
		return nil, err
	}

	if apiResp.Status != "OK" {
		return nil, apiStatusError(apiResp.Status, apiResp.ErrorMessage)
	}

	if apiResp.Result == nil {
		return nil, &models.ProviderError{
			Provider: ProviderName,
			Kind:     models.ErrorKindParse,
			Message:  "details response missing result object",
		}
	}

	restaurant := convertPlace(*apiResp.Result)
	return &restaurant, nil
}

// apiStatusError maps an envelope-level rejection (a non-OK status
// inside a 200 response) onto the http_status kind. StatusCode stays
// 200 so callers can tell these apart from transport-level failures.
func apiStatusError(status, errorMessage string) *models.ProviderError {
	return &models.ProviderError{
		Provider:   ProviderName,
		Kind:       models.ErrorKindHTTPStatus,
		StatusCode: http.StatusOK,
		Message:    fmt.Sprintf("API error: %s - %s", status, errorMessage),
	}
}

// doJSON executes a GET request and decodes the JSON response into out,
// classifying transport, status, and decode failures.
func (c *Client) doJSON(ctx context.Context, requestURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return &models.ProviderError{
			Provider: ProviderName,
			Kind:     models.ErrorKindNetwork,
			Message:  "failed to build request",
			Cause:    err,
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &models.ProviderError{
			Provider: ProviderName,
			Kind:     models.ErrorKindNetwork,
			Message:  "request failed",
			Cause:    err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return models.NewHTTPStatusError(ProviderName, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &models.ProviderError{
			Provider: ProviderName,
			Kind:     models.ErrorKindParse,
			Message:  "failed to decode API response",
			Cause:    err,
		}
	}

	return nil
}

// convertPlace maps a Google Places API result to the unified model.
// Missing fields keep their zero values.
func convertPlace(place placeResult) models.Restaurant {
	r := models.Restaurant{
		Name:          place.Name,
		Address:       place.Vicinity,
		Rating:        place.Rating,
		ReviewCount:   place.UserRatingsTotal,
		Website:       place.Website,
		GooglePlaceID: place.PlaceID,
	}

	if r.Address == "" {
		r.Address = place.FormattedAddress
	}
	if place.FormattedPhoneNumber != "" {
		r.PhoneNumber = place.FormattedPhoneNumber
	} else if place.InternationalPhoneNum != "" {
		r.PhoneNumber = place.InternationalPhoneNum
	}

	if place.Geometry != nil && place.Geometry.Location != nil {
		r.Latitude = place.Geometry.Location.Lat
		r.Longitude = place.Geometry.Location.Lng
	}

	r.PriceLevel = priceLevelSymbol(place.PriceLevel)

	// Generic place types carry no cuisine signal
	for _, t := range place.Types {
		if t != "restaurant" && t != "food" && t != "establishment" &&
			t != "point_of_interest" {
			r.CuisineTypes = append(r.CuisineTypes, t)
		}
	}

	r.AcceptsReservations = place.Reservable
	r.Takeout = place.Takeout
	r.Delivery = place.Delivery

	if place.OpeningHours != nil && len(place.OpeningHours.WeekdayText) > 0 {
		r.Hours = convertWeekdayText(place.OpeningHours.WeekdayText)
	}

	return r
}

// priceLevelSymbol maps the numeric Google price level to dollar signs.
// Zero means the field was absent and stays empty.
func priceLevelSymbol(level int) string {
	switch level {
	case 0:
		return ""
	case 1:
		return "$"
	case 2:
		return "$$"
	case 3:
		return "$$$"
	case 4:
		return "$$$$"
	default:
		return "N/A"
	}
}

// convertWeekdayText parses entries like "Monday: 9:00 AM - 5:00 PM"
// into the per-day hours map.
func convertWeekdayText(weekdayText []string) models.OperatingHours {
	hours := models.OperatingHours{
		WeeklyHours: make(map[string]string),
	}
	open24 := len(weekdayText) > 0
	for _, entry := range weekdayText {
		day, schedule, found := strings.Cut(entry, ": ")
		if !found {
			open24 = false
			continue
		}
		hours.WeeklyHours[day] = schedule
		if !strings.EqualFold(schedule, "Open 24 hours") {
			open24 = false
		}
	}
	hours.Open24Hours = open24
	return hours
}
