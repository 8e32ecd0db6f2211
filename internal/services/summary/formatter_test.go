package summary

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ternarybob/taberna/internal/common"
	"github.com/ternarybob/taberna/internal/models"
)

func newTestService() *Service {
	return NewService(DefaultContextLimit, common.GetLogger()).(*Service)
}

func TestBuildContextFullEntry(t *testing.T) {
	svc := newTestService()

	got := svc.BuildContext([]models.Restaurant{{
		Name:         "Trattoria Roma",
		CuisineTypes: []string{"Italian", "Pizza"},
		PriceLevel:   "$$",
		Rating:       4.5,
		ReviewCount:  230,
		Address:      "12 Via Nuova",
	}}, 10)

	want := "Available restaurants in the area:\n\n" +
		"1. Trattoria Roma\n" +
		"   Cuisine: Italian, Pizza\n" +
		"   Price: $$\n" +
		"   Rating: 4.5/5.0 (230 reviews)\n" +
		"   Address: 12 Via Nuova\n\n"

	if got != want {
		t.Errorf("unexpected context:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestBuildContextOmitsAbsentFields(t *testing.T) {
	svc := newTestService()

	got := svc.BuildContext([]models.Restaurant{{Name: "Bare Bones"}}, 10)

	want := "Available restaurants in the area:\n\n1. Bare Bones\n\n"
	if got != want {
		t.Errorf("unexpected context:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestBuildContextRatingWithoutReviews(t *testing.T) {
	svc := newTestService()

	got := svc.BuildContext([]models.Restaurant{{Name: "New Spot", Rating: 4.0}}, 10)

	if !strings.Contains(got, "   Rating: 4.0/5.0\n") {
		t.Errorf("expected rating without review suffix, got:\n%q", got)
	}
	if strings.Contains(got, "reviews") {
		t.Errorf("zero reviews must be omitted, got:\n%q", got)
	}
}

func TestBuildContextCapsAtLimit(t *testing.T) {
	svc := newTestService()

	restaurants := make([]models.Restaurant, 50)
	for i := range restaurants {
		restaurants[i] = models.Restaurant{Name: fmt.Sprintf("Restaurant %d", i+1)}
	}

	got := svc.BuildContext(restaurants, 10)

	if !strings.Contains(got, "10. Restaurant 10\n") {
		t.Errorf("expected 10th entry present, got:\n%q", got)
	}
	if strings.Contains(got, "11. ") {
		t.Errorf("expected no 11th entry, got:\n%q", got)
	}
}

func TestBuildContextPreservesInputOrder(t *testing.T) {
	svc := newTestService()

	got := svc.BuildContext([]models.Restaurant{
		{Name: "Zeta"},
		{Name: "Alpha"},
	}, 10)

	zeta := strings.Index(got, "1. Zeta")
	alpha := strings.Index(got, "2. Alpha")
	if zeta == -1 || alpha == -1 || zeta > alpha {
		t.Errorf("formatter must not reorder records:\n%q", got)
	}
}

func TestBuildContextDefaultLimit(t *testing.T) {
	svc := newTestService()

	restaurants := make([]models.Restaurant, 15)
	for i := range restaurants {
		restaurants[i] = models.Restaurant{Name: fmt.Sprintf("Restaurant %d", i+1)}
	}

	got := svc.BuildContext(restaurants, 0)

	if strings.Contains(got, "11. ") {
		t.Errorf("zero limit must fall back to the default of 10, got:\n%q", got)
	}
}

func TestBuildContextEmptyList(t *testing.T) {
	svc := newTestService()

	got := svc.BuildContext(nil, 10)
	if got != "Available restaurants in the area:\n\n" {
		t.Errorf("empty list should render header only, got:\n%q", got)
	}
}

func TestTodayHours(t *testing.T) {
	svc := newTestService()
	// Monday
	svc.nowFn = func() time.Time { return time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC) }

	r := &models.Restaurant{Hours: models.OperatingHours{
		WeeklyHours: map[string]string{"Monday": "11:00 AM - 10:00 PM"},
	}}
	if got := svc.TodayHours(r); got != "11:00 AM - 10:00 PM" {
		t.Errorf("expected Monday hours, got %q", got)
	}

	open24 := &models.Restaurant{Hours: models.OperatingHours{Open24Hours: true}}
	if got := svc.TodayHours(open24); got != "Open 24 hours" {
		t.Errorf("expected open 24 hours, got %q", got)
	}

	unknown := &models.Restaurant{}
	if got := svc.TodayHours(unknown); got != "" {
		t.Errorf("expected empty hours for unknown, got %q", got)
	}
}
