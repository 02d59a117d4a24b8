package utils

import (
	"math"

	"github.com/twpayne/go-polyline"
)

const earthRadiusKm = 6371.0088

// HaversineKm is the great-circle distance between two points in kilometres.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// EncodePolyline encodes [lat, lon] pairs in the Google polyline format,
// dropping consecutive duplicate points.
func EncodePolyline(points [][]float64) string {
	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		if n := len(coords); n > 0 && coords[n-1][0] == p[0] && coords[n-1][1] == p[1] {
			continue
		}
		coords = append(coords, p)
	}
	return string(polyline.EncodeCoords(coords))
}
