package google

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ternarybob/taberna/internal/common"
	"github.com/ternarybob/taberna/internal/models"
)

type captureHTTPClient struct {
	request      *http.Request
	statusCode   int
	responseBody string
	doErr        error
	doCalls      int
}

func (c *captureHTTPClient) Do(req *http.Request) (*http.Response, error) {
	c.doCalls++
	c.request = req
	if c.doErr != nil {
		return nil, c.doErr
	}
	statusCode := c.statusCode
	if statusCode == 0 {
		statusCode = 200
	}
	responseBody := c.responseBody
	if strings.TrimSpace(responseBody) == "" {
		responseBody = `{"results":[],"status":"ZERO_RESULTS"}`
	}
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(strings.NewReader(responseBody)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func newTestClient(httpClient *captureHTTPClient) *Client {
	config := &common.ProviderConfig{
		APIKey:         "test-key",
		RequestTimeout: common.NewDuration(5 * time.Second),
		MaxResults:     20,
	}
	return NewClient(config, common.GetLogger(), WithHTTPClient(httpClient))
}

func TestSearchBuildsNearbySearchRequest(t *testing.T) {
	httpClient := &captureHTTPClient{}
	client := newTestClient(httpClient)

	loc := models.Location{Latitude: 37.7749, Longitude: -122.4194}
	filters := models.SearchFilters{
		CuisineTypes: []string{"italian", "pizza"},
		MaxDistance:  2000,
		OpenNow:      true,
	}

	_, err := client.Search(context.Background(), loc, filters)
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	if httpClient.request == nil {
		t.Fatal("expected request to be captured")
	}

	query := httpClient.request.URL.Query()
	if got := query.Get("location"); got != "37.774900,-122.419400" {
		t.Fatalf("expected location param, got %q", got)
	}
	if got := query.Get("radius"); got != "2000" {
		t.Fatalf("expected radius 2000, got %q", got)
	}
	if got := query.Get("type"); got != "restaurant" {
		t.Fatalf("expected type restaurant, got %q", got)
	}
	if got := query.Get("opennow"); got != "true" {
		t.Fatalf("expected opennow true, got %q", got)
	}
	if got := query.Get("keyword"); got != "italian pizza" {
		t.Fatalf("expected space-separated keyword, got %q", got)
	}
	if raw := httpClient.request.URL.RawQuery; !strings.Contains(raw, "keyword=italian+pizza") {
		t.Fatalf("expected wire-level + separator, got %q", raw)
	}
	if got := query.Get("key"); got != "test-key" {
		t.Fatalf("expected api key, got %q", got)
	}
}

func TestSearchAppliesDefaultRadius(t *testing.T) {
	httpClient := &captureHTTPClient{}
	client := newTestClient(httpClient)

	_, err := client.Search(context.Background(), models.Location{Latitude: 1, Longitude: 2}, models.SearchFilters{})
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}

	if got := httpClient.request.URL.Query().Get("radius"); got != "5000" {
		t.Fatalf("expected default radius 5000, got %q", got)
	}
}

func TestSearchConvertsResults(t *testing.T) {
	httpClient := &captureHTTPClient{
		responseBody: `{
			"status": "OK",
			"results": [
				{
					"name": "Trattoria Roma",
					"vicinity": "12 Via Nuova",
					"place_id": "gp-123",
					"geometry": {"location": {"lat": 37.78, "lng": -122.41}},
					"rating": 4.5,
					"user_ratings_total": 230,
					"price_level": 2,
					"types": ["restaurant", "food", "italian_restaurant", "establishment", "point_of_interest"]
				},
				{
					"name": "No Extras Diner",
					"place_id": "gp-456"
				}
			]
		}`,
	}
	client := newTestClient(httpClient)

	results, err := client.Search(context.Background(), models.Location{Latitude: 37.77, Longitude: -122.42}, models.SearchFilters{})
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	first := results[0]
	if first.Name != "Trattoria Roma" {
		t.Errorf("expected name Trattoria Roma, got %q", first.Name)
	}
	if first.Address != "12 Via Nuova" {
		t.Errorf("expected vicinity as address, got %q", first.Address)
	}
	if first.GooglePlaceID != "gp-123" {
		t.Errorf("expected place id gp-123, got %q", first.GooglePlaceID)
	}
	if first.Latitude != 37.78 || first.Longitude != -122.41 {
		t.Errorf("unexpected coordinates: %v,%v", first.Latitude, first.Longitude)
	}
	if first.Rating != 4.5 {
		t.Errorf("expected rating 4.5, got %v", first.Rating)
	}
	if first.ReviewCount != 230 {
		t.Errorf("expected 230 reviews, got %d", first.ReviewCount)
	}
	if first.PriceLevel != "$$" {
		t.Errorf("expected price level $$, got %q", first.PriceLevel)
	}
	if len(first.CuisineTypes) != 1 || first.CuisineTypes[0] != "italian_restaurant" {
		t.Errorf("expected generic place types filtered out, got %v", first.CuisineTypes)
	}

	second := results[1]
	if second.Rating != 0 || second.PriceLevel != "" || second.Address != "" {
		t.Errorf("expected absent fields to stay zero, got %+v", second)
	}
}

func TestSearchMissingAPIKey(t *testing.T) {
	config := &common.ProviderConfig{RequestTimeout: common.NewDuration(time.Second)}
	client := NewClient(config, common.GetLogger(), WithHTTPClient(&captureHTTPClient{}))

	_, err := client.Search(context.Background(), models.Location{}, models.SearchFilters{})
	var provErr *models.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if provErr.Kind != models.ErrorKindConfiguration {
		t.Fatalf("expected configuration error, got %s", provErr.Kind)
	}
}

func TestSearchTransportError(t *testing.T) {
	httpClient := &captureHTTPClient{doErr: errors.New("connection refused")}
	client := newTestClient(httpClient)

	_, err := client.Search(context.Background(), models.Location{}, models.SearchFilters{})
	var provErr *models.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if provErr.Kind != models.ErrorKindNetwork {
		t.Fatalf("expected network error, got %s", provErr.Kind)
	}
	if provErr.Provider != ProviderName {
		t.Fatalf("expected provider %s, got %s", ProviderName, provErr.Provider)
	}
	if !errors.Is(err, models.ErrUpstream) && provErr.Cause == nil {
		t.Fatal("expected wrapped cause")
	}
}

func TestSearchHTTPStatusError(t *testing.T) {
	httpClient := &captureHTTPClient{statusCode: 403, responseBody: `{"error_message":"denied"}`}
	client := newTestClient(httpClient)

	_, err := client.Search(context.Background(), models.Location{}, models.SearchFilters{})
	var provErr *models.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if provErr.Kind != models.ErrorKindHTTPStatus {
		t.Fatalf("expected http_status error, got %s", provErr.Kind)
	}
	if provErr.StatusCode != 403 {
		t.Fatalf("expected status 403, got %d", provErr.StatusCode)
	}
}

func TestSearchAPIStatusError(t *testing.T) {
	httpClient := &captureHTTPClient{responseBody: `{"status":"REQUEST_DENIED","error_message":"bad key"}`}
	client := newTestClient(httpClient)

	_, err := client.Search(context.Background(), models.Location{}, models.SearchFilters{})
	var provErr *models.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if provErr.Kind != models.ErrorKindHTTPStatus {
		t.Fatalf("expected http_status error, got %s", provErr.Kind)
	}
	if !strings.Contains(provErr.Message, "REQUEST_DENIED") {
		t.Fatalf("expected status in message, got %q", provErr.Message)
	}
	if provErr.StatusCode != http.StatusOK {
		t.Fatalf("envelope rejection must keep the 200 it arrived under, got %d", provErr.StatusCode)
	}
}

func TestSearchParseError(t *testing.T) {
	httpClient := &captureHTTPClient{responseBody: `{not json`}
	client := newTestClient(httpClient)

	_, err := client.Search(context.Background(), models.Location{}, models.SearchFilters{})
	var provErr *models.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if provErr.Kind != models.ErrorKindParse {
		t.Fatalf("expected parse error, got %s", provErr.Kind)
	}
}

func TestDetailsConvertsHours(t *testing.T) {
	httpClient := &captureHTTPClient{
		responseBody: `{
			"status": "OK",
			"result": {
				"name": "Trattoria Roma",
				"place_id": "gp-123",
				"formatted_phone_number": "(415) 555-0100",
				"website": "https://trattoria.example",
				"opening_hours": {
					"weekday_text": [
						"Monday: 11:00 AM - 10:00 PM",
						"Tuesday: Closed"
					]
				}
			}
		}`,
	}
	client := newTestClient(httpClient)

	result, err := client.Details(context.Background(), "gp-123")
	if err != nil {
		t.Fatalf("details returned error: %v", err)
	}
	if result.PhoneNumber != "(415) 555-0100" {
		t.Errorf("expected phone number, got %q", result.PhoneNumber)
	}
	if got := result.Hours.WeeklyHours["Monday"]; got != "11:00 AM - 10:00 PM" {
		t.Errorf("expected Monday hours, got %q", got)
	}
	if got := result.Hours.WeeklyHours["Tuesday"]; got != "Closed" {
		t.Errorf("expected Tuesday closed, got %q", got)
	}
	if !strings.Contains(httpClient.request.URL.Path, "/details/json") {
		t.Errorf("expected details endpoint, got %s", httpClient.request.URL.Path)
	}
}

func TestDetailsDetectsOpen24Hours(t *testing.T) {
	httpClient := &captureHTTPClient{
		responseBody: `{
			"status": "OK",
			"result": {
				"name": "All Night Diner",
				"place_id": "gp-789",
				"opening_hours": {
					"weekday_text": [
						"Monday: Open 24 hours",
						"Tuesday: Open 24 hours",
						"Wednesday: Open 24 hours",
						"Thursday: Open 24 hours",
						"Friday: Open 24 hours",
						"Saturday: Open 24 hours",
						"Sunday: Open 24 hours"
					]
				}
			}
		}`,
	}
	client := newTestClient(httpClient)

	result, err := client.Details(context.Background(), "gp-789")
	if err != nil {
		t.Fatalf("details returned error: %v", err)
	}
	if !result.Hours.Open24Hours {
		t.Error("expected Open24Hours to be detected")
	}
}
