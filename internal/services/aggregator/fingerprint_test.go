package aggregator

import (
	"testing"

	"github.com/ternarybob/taberna/internal/models"
)

func TestFingerprintDeterministic(t *testing.T) {
	loc := models.Location{Latitude: 37.7749, Longitude: -122.4194}
	filters := models.SearchFilters{
		CuisineTypes: []string{"italian", "pizza"},
		MinRating:    4.0,
		MaxDistance:  2000,
	}

	if Fingerprint(loc, filters) != Fingerprint(loc, filters) {
		t.Fatal("identical inputs must produce identical fingerprints")
	}
}

func TestFingerprintCuisineOrderIndependent(t *testing.T) {
	loc := models.Location{Latitude: 37.7749, Longitude: -122.4194}
	a := models.SearchFilters{CuisineTypes: []string{"pizza", "italian"}}
	b := models.SearchFilters{CuisineTypes: []string{"italian", "pizza"}}

	if Fingerprint(loc, a) != Fingerprint(loc, b) {
		t.Fatal("cuisine ordering must not change the fingerprint")
	}
}

func TestFingerprintRoundsBeyondFourthDecimal(t *testing.T) {
	a := models.Location{Latitude: 37.77491, Longitude: -122.41942}
	b := models.Location{Latitude: 37.77493, Longitude: -122.41938}
	filters := models.SearchFilters{}

	if Fingerprint(a, filters) != Fingerprint(b, filters) {
		t.Fatal("locations differing only beyond 4 decimal places must share a fingerprint")
	}
}

func TestFingerprintDistinguishesFilters(t *testing.T) {
	loc := models.Location{Latitude: 37.7749, Longitude: -122.4194}

	base := Fingerprint(loc, models.SearchFilters{MinRating: 4.0})
	differentRating := Fingerprint(loc, models.SearchFilters{MinRating: 3.0})
	differentDistance := Fingerprint(loc, models.SearchFilters{MinRating: 4.0, MaxDistance: 1000})

	if base == differentRating {
		t.Error("min rating must be part of the fingerprint")
	}
	if base == differentDistance {
		t.Error("max distance must be part of the fingerprint")
	}
}

func TestFingerprintAppliesDefaultDistance(t *testing.T) {
	loc := models.Location{Latitude: 1, Longitude: 2}

	explicit := Fingerprint(loc, models.SearchFilters{MaxDistance: models.DefaultMaxDistance})
	defaulted := Fingerprint(loc, models.SearchFilters{})

	if explicit != defaulted {
		t.Fatal("omitted max distance must fingerprint like the default")
	}
}
