package utils

import "github.com/transsib/navigator/internal/railway"

// SegmentPath returns the encoded polyline of a segment and its compass
// heading from the first to the last station. A segment of fewer than two
// stations has no heading.
func SegmentPath(segment []railway.Station) (points, heading string) {
	coords := make([][]float64, len(segment))
	for i, s := range segment {
		coords[i] = []float64{s.Position.Lat, s.Position.Lon}
	}

	if n := len(segment); n > 1 {
		first, last := segment[0].Position, segment[n-1].Position
		heading = CompassDirection(first.Lat, first.Lon, last.Lat, last.Lon)
	}

	return EncodePolyline(coords), heading
}
