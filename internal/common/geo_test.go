package common

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lng1 float64
		lat2, lng2 float64
		want       float64
		tolerance  float64
	}{
		{"same point", 37.7749, -122.4194, 37.7749, -122.4194, 0, 0.001},
		{"one degree latitude", 0, 0, 1, 0, 111195, 100},
		{"sf to oakland", 37.7749, -122.4194, 37.8044, -122.2712, 13430, 100},
		{"nearby venues under 50m", 37.77490, -122.41940, 37.77492, -122.41990, 44.2, 1.0},
		{"across equator", -0.01, 0, 0.01, 0, 2223.9, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineDistance(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("HaversineDistance() = %v, want %v (tolerance %v)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestHaversineDistanceSymmetry(t *testing.T) {
	ab := HaversineDistance(37.7749, -122.4194, 34.0522, -118.2437)
	ba := HaversineDistance(34.0522, -118.2437, 37.7749, -122.4194)
	if math.Abs(ab-ba) > 0.0001 {
		t.Errorf("distance not symmetric: %v vs %v", ab, ba)
	}
}
