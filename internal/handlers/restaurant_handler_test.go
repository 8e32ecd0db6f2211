package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ternarybob/taberna/internal/common"
	"github.com/ternarybob/taberna/internal/models"
)

func TestDetailsHandlerRoutesBySource(t *testing.T) {
	var gotProvider, gotID string
	agg := &mockAggregator{
		detailsFunc: func(ctx context.Context, provider, id string) (*models.Restaurant, error) {
			gotProvider, gotID = provider, id
			return &models.Restaurant{Name: "Found"}, nil
		},
	}
	handler := NewRestaurantHandler(agg, common.GetLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/gp-123?source=google", nil)
	rec := httptest.NewRecorder()
	handler.DetailsHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotProvider != "GooglePlaces" || gotID != "gp-123" {
		t.Errorf("expected GooglePlaces/gp-123, got %s/%s", gotProvider, gotID)
	}
}

func TestDetailsHandlerRejectsUnknownSource(t *testing.T) {
	handler := NewRestaurantHandler(&mockAggregator{}, common.GetLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/gp-123?source=tripadvisor", nil)
	rec := httptest.NewRecorder()
	handler.DetailsHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown source, got %d", rec.Code)
	}
}

func TestDetailsHandlerRequiresID(t *testing.T) {
	handler := NewRestaurantHandler(&mockAggregator{}, common.GetLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/?source=yelp", nil)
	rec := httptest.NewRecorder()
	handler.DetailsHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing id, got %d", rec.Code)
	}
}

func TestDetailsHandlerUpstreamFailure(t *testing.T) {
	agg := &mockAggregator{
		detailsFunc: func(ctx context.Context, provider, id string) (*models.Restaurant, error) {
			return nil, &models.ProviderError{
				Provider: "Yelp",
				Kind:     models.ErrorKindHTTPStatus,
				Message:  "business not found",
			}
		},
	}
	handler := NewRestaurantHandler(agg, common.GetLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/missing?source=yelp", nil)
	rec := httptest.NewRecorder()
	handler.DetailsHandler(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 for upstream failure, got %d", rec.Code)
	}
}

func TestCacheClearHandler(t *testing.T) {
	agg := &mockAggregator{}
	handler := NewCacheHandler(agg, nil, common.GetLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/cache/clear", nil)
	rec := httptest.NewRecorder()
	handler.ClearHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if agg.clearCalls != 1 {
		t.Fatalf("expected one clear call, got %d", agg.clearCalls)
	}
}
