package yelp

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
	ProviderName = "Yelp"

	defaultBaseURL = "https://api.yelp.com/v3"

	// Yelp caps the search page size at 50.
	maxPageSize = 50
)

// HTTPClient abstracts the HTTP transport so tests can substitute a fake.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client queries the Yelp Fusion API and maps businesses into the
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

// NewClient creates a Yelp Fusion provider client
func NewClient(config *common.ProviderConfig, logger arbor.ILogger, opts ...Option) *Client {
	maxResults := config.MaxResults
	if maxResults <= 0 || maxResults > maxPageSize {
		maxResults = maxPageSize
	}

	c := &Client{
		apiKey:     config.APIKey,
		baseURL:    defaultBaseURL,
		maxResults: maxResults,
		httpClient: &http.Client{Timeout: config.RequestTimeout.Duration},
		logger:     logger,
	}
	if config.RateLimit.Duration > 0 {
		c.limiter = rate.NewLimiter(rate.Every(config.RateLimit.Duration), 1)
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

// Search performs a Yelp Fusion business search around the location
func (c *Client) Search(ctx context.Context, loc models.Location, filters models.SearchFilters) ([]models.Restaurant, error) {
	if c.apiKey == "" {
		return nil, models.NewConfigurationError("Yelp API key not configured")
	}

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	filters = filters.Normalized()

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", loc.Latitude))
	params.Set("longitude", fmt.Sprintf("%f", loc.Longitude))
	params.Set("radius", fmt.Sprintf("%d", int(filters.MaxDistance+0.5)))
	params.Set("categories", "restaurants")
	params.Set("limit", fmt.Sprintf("%d", c.maxResults))
	if filters.OpenNow {
		params.Set("open_now", "true")
	}
	if len(filters.CuisineTypes) > 0 {
		// Space-separated terms; Encode renders the separator as "+"
		params.Set("term", strings.Join(filters.CuisineTypes, " "))
	}

	requestURL := fmt.Sprintf("%s/businesses/search?%s", c.baseURL, params.Encode())

	c.logger.Debug().
		Str("location", fmt.Sprintf("%f,%f", loc.Latitude, loc.Longitude)).
		Int("radius", int(filters.MaxDistance+0.5)).
		Msg("Calling Yelp business search API")

	var apiResp searchResponse
	if err := c.doJSON(ctx, requestURL, &apiResp); err != nil {
		return nil, err
	}

	restaurants := make([]models.Restaurant, 0, len(apiResp.Businesses))
	for _, biz := range apiResp.Businesses {
		restaurants = append(restaurants, convertBusiness(biz))
	}

	c.logger.Info().
		Int("results_count", len(restaurants)).
		Int("total_available", apiResp.Total).
		Msg("Yelp business search completed")

	return restaurants, nil
}

// Details fetches the full record for a single business ID
func (c *Client) Details(ctx context.Context, id string) (*models.Restaurant, error) {
	if c.apiKey == "" {
		return nil, models.NewConfigurationError("Yelp API key not configured")
	}

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	requestURL := fmt.Sprintf("%s/businesses/%s", c.baseURL, url.PathEscape(id))

	c.logger.Debug().
		Str("business_id", id).
		Msg("Calling Yelp business details API")

	var biz business
	if err := c.doJSON(ctx, requestURL, &biz); err != nil {
		return nil, err
	}

	restaurant := convertBusiness(biz)
	return &restaurant, nil
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return &models.ProviderError{
			Provider: ProviderName,
			Kind:     models.ErrorKindNetwork,
			Message:  "rate limit wait cancelled",
			Cause:    err,
		}
	}
	return nil
}

// doJSON executes an authenticated GET request and decodes the JSON
// response into out, classifying transport, status, and decode failures.
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
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

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
		provErr := models.NewHTTPStatusError(ProviderName, resp.StatusCode, body)
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error.Description != "" {
			provErr.Message = fmt.Sprintf("%s: %s", errResp.Error.Code, errResp.Error.Description)
		}
		return provErr
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

// convertBusiness maps a Yelp business to the unified model.
// Missing fields keep their zero values.
func convertBusiness(biz business) models.Restaurant {
	r := models.Restaurant{
		Name:           biz.Name,
		Rating:         biz.Rating,
		ReviewCount:    biz.ReviewCount,
		PriceLevel:     biz.Price,
		PhoneNumber:    biz.Phone,
		Website:        biz.URL,
		YelpBusinessID: biz.ID,
	}

	if r.PhoneNumber == "" {
		r.PhoneNumber = biz.DisplayPhone
	}

	if biz.Coordinates != nil {
		r.Latitude = biz.Coordinates.Latitude
		r.Longitude = biz.Coordinates.Longitude
	}

	if biz.Location != nil {
		r.Address = biz.Location.Address1
		if r.Address == "" && len(biz.Location.DisplayAddress) > 0 {
			r.Address = strings.Join(biz.Location.DisplayAddress, ", ")
		}
	}

	for _, cat := range biz.Categories {
		if cat.Title != "" {
			r.CuisineTypes = append(r.CuisineTypes, cat.Title)
		}
	}

	for _, txn := range biz.Transactions {
		switch txn {
		case "delivery":
			r.Delivery = true
		case "pickup":
			r.Takeout = true
		case "restaurant_reservation":
			r.AcceptsReservations = true
		}
	}

	if len(biz.Hours) > 0 {
		r.Hours = convertHours(biz.Hours[0])
	}

	return r
}

// convertHours flattens Yelp opening spans into per-day display strings.
// Yelp numbers days from Monday=0.
func convertHours(hours businessHour) models.OperatingHours {
	result := models.OperatingHours{
		WeeklyHours: make(map[string]string),
	}
	for _, span := range hours.Open {
		if span.Day < 0 || span.Day >= len(models.Weekdays) {
			continue
		}
		day := models.Weekdays[span.Day]
		window := fmt.Sprintf("%s - %s", formatClock(span.Start), formatClock(span.End))
		if existing, ok := result.WeeklyHours[day]; ok {
			window = existing + ", " + window
		}
		result.WeeklyHours[day] = window
	}
	return result
}

// formatClock renders Yelp's "HHMM" time as "HH:MM".
func formatClock(hhmm string) string {
	if len(hhmm) != 4 {
		return hhmm
	}
	return hhmm[:2] + ":" + hhmm[2:]
}
