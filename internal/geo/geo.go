package geo

import (
	"math"

	"github.com/waveguard/risk-engine/internal/models"
)

// earthRadiusKM is the mean Earth radius.
const earthRadiusKM = 6371.0

// Distance returns the haversine great-circle distance between two
// points in kilometers. Symmetric; zero for identical points.
func Distance(a, b models.GeoPoint) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKM * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
