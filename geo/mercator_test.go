package geo

import (
	"math"
	"testing"
)

func TestLatLon(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		zoom     int
		wantX    float64
		wantY    float64
	}{
		{
			name:  "Center of map at zoom 1",
			lat:   0,
			lon:   0,
			zoom:  1,
			wantX: 1.0,
			wantY: 1.0,
		},
		{
			name:  "Top-left corner at zoom 1",
			lat:   maxLat,
			lon:   -180,
			zoom:  1,
			wantX: 0.0,
			wantY: 0.0,
		},
		{
			name:  "Bottom-right corner at zoom 1",
			lat:   minLat,
			lon:   180,
			zoom:  1,
			wantX: 2.0,
			wantY: 2.0,
		},
		{
			name:  "Latitude beyond the limit is clamped",
			lat:   89,
			lon:   0,
			zoom:  0,
			wantX: 0.5,
			wantY: 0.0,
		},
		{
			name:  "Zoom beyond the table uses the deepest level",
			lat:   0,
			lon:   -180,
			zoom:  40,
			wantX: 0,
			wantY: pow2[MaxZoom] / 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LatLon(tt.lat, tt.lon, tt.zoom)
			if math.Abs(got.X-tt.wantX) > 1e-6 || math.Abs(got.Y-tt.wantY) > 1e-6 {
				t.Errorf("got (%f, %f); want (%f, %f)",
					got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMeters(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		zoom  int
		wantX float64
		wantY float64
	}{
		{"Origin at zoom 1", 0, 0, 1, 1, 1},
		{"North-east corner at zoom 0", maxMeters, maxMeters, 0, 1, 0},
		{"South-west corner at zoom 2", -maxMeters, -maxMeters, 2, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Meters(tt.x, tt.y, tt.zoom)
			if math.Abs(got.X-tt.wantX) > 1e-6 || math.Abs(got.Y-tt.wantY) > 1e-6 {
				t.Errorf("got (%f, %f); want (%f, %f)",
					got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMetersMatchesLatLonOnEquator(t *testing.T) {
	a := LatLon(0, 90, 3)
	b := Meters(maxMeters/2, 0, 3)
	if a.Distance(b) > 1e-6 {
		t.Errorf("LatLon %v and Meters %v disagree", a, b)
	}
}
