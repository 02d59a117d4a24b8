package railway

// Viewport is a map center and zoom level.
type Viewport struct {
	Zoom      float64
	CenterLat float64
	CenterLon float64
}

// Interpolate is a clamped linear interpolation of x from [x0, x1] onto [y0, y1].
func Interpolate(x, x0, x1, y0, y1 float64) float64 {
	if x <= x0 {
		return y0
	}
	if x >= x1 {
		return y1
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// ZoomFor returns the zoom level that frames an angular span in degrees.
// Larger spans never yield a larger zoom.
func (s ZoomScale) ZoomFor(span float64) float64 {
	return Interpolate(span, s.MinSpan, s.MaxSpan, s.MaxZoom, s.MinZoom)
}

// FitViewport centers on the bounding box of coords and picks a zoom from
// its larger side. An empty input yields the zero Viewport.
func FitViewport(coords []Coordinate, scale ZoomScale) Viewport {
	if len(coords) == 0 {
		return Viewport{}
	}

	minLat, maxLat := coords[0].Lat, coords[0].Lat
	minLon, maxLon := coords[0].Lon, coords[0].Lon
	for _, c := range coords[1:] {
		minLat = min(minLat, c.Lat)
		maxLat = max(maxLat, c.Lat)
		minLon = min(minLon, c.Lon)
		maxLon = max(maxLon, c.Lon)
	}

	span := max(maxLat-minLat, maxLon-minLon)

	return Viewport{
		Zoom:      scale.ZoomFor(span),
		CenterLat: (maxLat + minLat) / 2,
		CenterLon: (maxLon + minLon) / 2,
	}
}
