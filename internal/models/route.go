package models

import "github.com/transsib/navigator/internal/railway"

type Viewport struct {
	Zoom      float64 `json:"zoom"`
	CenterLat float64 `json:"centerLat"`
	CenterLon float64 `json:"centerLon"`
}

func NewViewport(vp railway.Viewport) Viewport {
	return Viewport{Zoom: vp.Zoom, CenterLat: vp.CenterLat, CenterLon: vp.CenterLon}
}

type TripSummary struct {
	DistanceKm   int    `json:"distanceKm"`
	Days         int    `json:"days"`
	Hours        int    `json:"hours"`
	Duration     string `json:"duration"`
	StopCount    int    `json:"stopCount"`
	FromLabel    string `json:"fromLabel"`
	ToLabel      string `json:"toLabel"`
	DistanceText string `json:"distanceText"`
	DurationText string `json:"durationText"`
	StopsText    string `json:"stopsText"`
}

// NewTripSummary returns nil for a nil summary so that it encodes as null.
func NewTripSummary(summary *railway.TripSummary) *TripSummary {
	if summary == nil {
		return nil
	}
	return &TripSummary{
		DistanceKm:   summary.DistanceKm,
		Days:         summary.Days,
		Hours:        summary.Hours,
		Duration:     summary.Duration,
		StopCount:    summary.StopCount,
		FromLabel:    summary.FromLabel,
		ToLabel:      summary.ToLabel,
		DistanceText: summary.DistanceText,
		DurationText: summary.DurationText,
		StopsText:    summary.StopsText,
	}
}

// RouteEntry is the route.json entry.
type RouteEntry struct {
	Kind           string       `json:"kind"`
	StartIndex     int          `json:"startIndex"`
	EndIndex       int          `json:"endIndex"`
	RouteIsFormed  bool         `json:"routeIsFormed"`
	Viewport       Viewport     `json:"viewport"`
	Summary        *TripSummary `json:"summary"`
	Boundaries     []Station    `json:"boundaries"`
	HighlightColor string       `json:"highlightColor"`
	Heading        string       `json:"heading"`
	Points         string       `json:"points"`
	Length         int          `json:"length"`
}

// NewRouteEntry converts an engine result. points is the encoded polyline of
// the segment and heading its compass direction. Length counts segment stations.
func NewRouteEntry(result railway.Result, points, heading string) RouteEntry {
	boundaries := make([]Station, len(result.Boundaries))
	for i, marker := range result.Boundaries {
		boundaries[i] = NewStation(marker.Index, marker.Station)
	}

	return RouteEntry{
		Kind:           result.State.Kind.String(),
		StartIndex:     result.State.Range.Start,
		EndIndex:       result.State.Range.End,
		RouteIsFormed:  result.RouteFormed(),
		Viewport:       NewViewport(result.Viewport),
		Summary:        NewTripSummary(result.Summary),
		Boundaries:     boundaries,
		HighlightColor: result.HighlightColor,
		Heading:        heading,
		Points:         points,
		Length:         len(result.Segment),
	}
}
