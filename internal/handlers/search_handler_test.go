package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ternarybob/taberna/internal/common"
	"github.com/ternarybob/taberna/internal/interfaces"
	"github.com/ternarybob/taberna/internal/models"
)

// mockAggregator implements interfaces.AggregatorService for testing
type mockAggregator struct {
	searchFunc     func(ctx context.Context, loc models.Location, filters models.SearchFilters) (*interfaces.SearchResult, error)
	detailsFunc    func(ctx context.Context, provider, id string) (*models.Restaurant, error)
	clearCacheFunc func() error
	clearCalls     int
}

func (m *mockAggregator) Search(ctx context.Context, loc models.Location, filters models.SearchFilters) (*interfaces.SearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, loc, filters)
	}
	return &interfaces.SearchResult{Restaurants: []models.Restaurant{}}, nil
}

func (m *mockAggregator) Details(ctx context.Context, provider, id string) (*models.Restaurant, error) {
	if m.detailsFunc != nil {
		return m.detailsFunc(ctx, provider, id)
	}
	return nil, nil
}

func (m *mockAggregator) ClearCache() error {
	m.clearCalls++
	if m.clearCacheFunc != nil {
		return m.clearCacheFunc()
	}
	return nil
}

func executeSearch(handler *SearchHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.SearchHandler(rec, req)
	return rec
}

func TestSearchHandlerReturnsResults(t *testing.T) {
	agg := &mockAggregator{
		searchFunc: func(ctx context.Context, loc models.Location, filters models.SearchFilters) (*interfaces.SearchResult, error) {
			if loc.Latitude != 37.7749 {
				t.Errorf("location not passed through: %+v", loc)
			}
			if len(filters.CuisineTypes) != 1 || filters.CuisineTypes[0] != "italian" {
				t.Errorf("filters not passed through: %+v", filters)
			}
			return &interfaces.SearchResult{
				Restaurants: []models.Restaurant{{Name: "Trattoria Roma", Rating: 4.5}},
			}, nil
		},
	}
	handler := NewSearchHandler(agg, nil, common.GetLogger())

	rec := executeSearch(handler, `{
		"location": {"latitude": 37.7749, "longitude": -122.4194},
		"filters": {"cuisine_types": ["italian"]}
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Count != 1 || resp.Restaurants[0].Name != "Trattoria Roma" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.SearchID == "" {
		t.Error("response must carry a search id")
	}
}

func TestSearchHandlerSurfacesProviderErrors(t *testing.T) {
	agg := &mockAggregator{
		searchFunc: func(ctx context.Context, loc models.Location, filters models.SearchFilters) (*interfaces.SearchResult, error) {
			return &interfaces.SearchResult{
				Restaurants: []models.Restaurant{{Name: "Partial"}},
				Errors: []*models.ProviderError{{
					Provider: "Yelp",
					Kind:     models.ErrorKindNetwork,
					Message:  "timeout",
				}},
			}, nil
		},
	}
	handler := NewSearchHandler(agg, nil, common.GetLogger())

	rec := executeSearch(handler, `{"location": {"latitude": 1, "longitude": 2}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("partial failure must still return 200, got %d", rec.Code)
	}

	var resp SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Provider != "Yelp" {
		t.Errorf("provider errors must be surfaced: %+v", resp.Errors)
	}
	if resp.Count != 1 {
		t.Errorf("records must survive alongside errors: %+v", resp)
	}
}

func TestSearchHandlerRejectsInvalidBody(t *testing.T) {
	handler := NewSearchHandler(&mockAggregator{}, nil, common.GetLogger())

	rec := executeSearch(handler, `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad JSON, got %d", rec.Code)
	}
}

func TestSearchHandlerRejectsOutOfRangeCoordinates(t *testing.T) {
	handler := NewSearchHandler(&mockAggregator{}, nil, common.GetLogger())

	rec := executeSearch(handler, `{"location": {"latitude": 123.0, "longitude": 0}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid latitude, got %d", rec.Code)
	}
}

func TestSearchHandlerRejectsWrongMethod(t *testing.T) {
	handler := NewSearchHandler(&mockAggregator{}, nil, common.GetLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rec := httptest.NewRecorder()
	handler.SearchHandler(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
