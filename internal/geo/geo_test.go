package geo

import (
	"math"
	"testing"

	"github.com/waveguard/risk-engine/internal/models"
)

func TestDistance_KnownPairs(t *testing.T) {
	tests := []struct {
		name     string
		a, b     models.GeoPoint
		wantKM   float64
		tolerKM  float64
	}{
		{
			name:    "tokyo to osaka",
			a:       models.GeoPoint{Latitude: 35.6762, Longitude: 139.6503},
			b:       models.GeoPoint{Latitude: 34.6937, Longitude: 135.5023},
			wantKM:  396,
			tolerKM: 5,
		},
		{
			name:    "london to paris",
			a:       models.GeoPoint{Latitude: 51.5074, Longitude: -0.1278},
			b:       models.GeoPoint{Latitude: 48.8566, Longitude: 2.3522},
			wantKM:  343,
			tolerKM: 5,
		},
		{
			name:    "across the antimeridian",
			a:       models.GeoPoint{Latitude: 0, Longitude: 179.5},
			b:       models.GeoPoint{Latitude: 0, Longitude: -179.5},
			wantKM:  111.19,
			tolerKM: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.wantKM) > tt.tolerKM {
				t.Errorf("Distance() = %.2f km, want %.2f ± %.2f", got, tt.wantKM, tt.tolerKM)
			}
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]models.GeoPoint{
		{{Latitude: 35.6762, Longitude: 139.6503}, {Latitude: -33.8688, Longitude: 151.2093}},
		{{Latitude: 90, Longitude: 0}, {Latitude: -90, Longitude: 0}},
		{{Latitude: 12.34, Longitude: -56.78}, {Latitude: -12.34, Longitude: 56.78}},
	}

	for _, p := range pairs {
		ab := Distance(p[0], p[1])
		ba := Distance(p[1], p[0])
		if ab != ba {
			t.Errorf("Distance not symmetric: %v vs %v for %v", ab, ba, p)
		}
	}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	p := models.GeoPoint{Latitude: 35.6762, Longitude: 139.6503}
	if d := Distance(p, p); d != 0 {
		t.Errorf("Distance(p, p) = %v, want 0", d)
	}
}
