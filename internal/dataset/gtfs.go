package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jamespfennell/gtfs"
	"github.com/transsib/navigator/internal/railway"
	"github.com/transsib/navigator/internal/utils"
)

// ErrNoTrips is returned when a GTFS feed has no trip for the requested route.
var ErrNoTrips = errors.New("no trips found for route")

// ParseGTFS builds the station sequence of a route from a zipped GTFS feed.
// The trip with the most stop times is taken as the full line, and each
// station's line coordinate is the cumulative great-circle distance in km
// from the first stop. An empty routeID considers every trip in the feed.
func ParseGTFS(data []byte, routeID string) ([]railway.Station, error) {
	static, err := gtfs.ParseStatic(data, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing gtfs feed: %w", err)
	}

	var longest *gtfs.ScheduledTrip
	for i := range static.Trips {
		trip := &static.Trips[i]
		if routeID != "" && (trip.Route == nil || trip.Route.Id != routeID) {
			continue
		}
		if longest == nil || len(trip.StopTimes) > len(longest.StopTimes) {
			longest = trip
		}
	}
	if longest == nil || len(longest.StopTimes) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoTrips, routeID)
	}

	stopTimes := make([]gtfs.ScheduledStopTime, len(longest.StopTimes))
	copy(stopTimes, longest.StopTimes)
	sort.SliceStable(stopTimes, func(i, j int) bool {
		return stopTimes[i].StopSequence < stopTimes[j].StopSequence
	})

	stations := make([]railway.Station, 0, len(stopTimes))
	var cumulative float64
	for i, st := range stopTimes {
		stop := st.Stop
		if stop == nil || stop.Latitude == nil || stop.Longitude == nil {
			return nil, fmt.Errorf("trip %s stop time %d: stop has no position", longest.ID, st.StopSequence)
		}
		name := strings.TrimSpace(stop.Name)
		if name == "" {
			name = stop.Id
		}
		pos := railway.Coordinate{Lat: *stop.Latitude, Lon: *stop.Longitude}
		if i > 0 {
			prev := stations[i-1].Position
			cumulative += utils.HaversineKm(prev.Lat, prev.Lon, pos.Lat, pos.Lon)
		}
		stations = append(stations, railway.Station{
			Name:           name,
			Position:       pos,
			LineCoordinate: cumulative,
		})
	}

	return stations, nil
}
