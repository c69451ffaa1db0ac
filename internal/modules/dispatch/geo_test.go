package dispatch

import (
	"math"
	"testing"

	"roadside/internal/types"
)

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      types.Point
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         types.Point{Lat: 37.7749, Lng: -122.4194},
			b:         types.Point{Lat: 37.7749, Lng: -122.4194},
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name:      "San Francisco to Oakland (~13km)",
			a:         types.Point{Lat: 37.7749, Lng: -122.4194},
			b:         types.Point{Lat: 37.8044, Lng: -122.2712},
			wantKm:    13.4,
			tolerance: 1.0,
		},
		{
			name:      "San Francisco to San Jose (~67km)",
			a:         types.Point{Lat: 37.7749, Lng: -122.4194},
			b:         types.Point{Lat: 37.3382, Lng: -121.8863},
			wantKm:    67,
			tolerance: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := haversineKm(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("haversineKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	a := types.Point{Lat: 37.7749, Lng: -122.4194}
	b := types.Point{Lat: 37.4419, Lng: -122.1430}
	d1 := haversineKm(a, b)
	d2 := haversineKm(b, a)
	if math.Abs(d1-d2) > 0.0001 {
		t.Errorf("haversine is not symmetric: %f vs %f", d1, d2)
	}
}

func TestHaversineKm_NonNegative(t *testing.T) {
	points := []types.Point{
		{Lat: 0, Lng: 0},
		{Lat: 90, Lng: 0},
		{Lat: -90, Lng: 180},
		{Lat: 37.7749, Lng: -122.4194},
	}
	for _, a := range points {
		for _, b := range points {
			if d := haversineKm(a, b); d < 0 || math.IsNaN(d) {
				t.Errorf("haversineKm(%v, %v) = %f, want finite non-negative", a, b, d)
			}
		}
	}
}
