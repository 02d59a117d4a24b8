package railway

// Coordinate is a geographic position in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Station is a single stop on the line. LineCoordinate is the cumulative
// distance along the track and is what trip distances are computed from.
type Station struct {
	Name           string
	Position       Coordinate
	LineCoordinate float64
}

// Line is the ordered, read-only sequence of stations along the railway.
type Line struct {
	stations []Station
	index    map[string]int
}

// NewLine copies stations into a new Line. Station order is taken as the
// physical order along the track; LineCoordinate monotonicity is not checked.
func NewLine(stations []Station) (*Line, error) {
	if len(stations) == 0 {
		return nil, ErrEmptyDataset
	}

	line := &Line{
		stations: make([]Station, len(stations)),
		index:    make(map[string]int, len(stations)),
	}
	copy(line.stations, stations)

	for i, station := range line.stations {
		// first occurrence wins, same as a linear scan over the list
		if _, exists := line.index[station.Name]; !exists {
			line.index[station.Name] = i
		}
	}

	return line, nil
}

// Len returns the number of stations on the line.
func (l *Line) Len() int {
	return len(l.stations)
}

// Station returns the station at index i.
func (l *Line) Station(i int) Station {
	return l.stations[i]
}

// Stations returns a copy of all stations in line order.
func (l *Line) Stations() []Station {
	out := make([]Station, len(l.stations))
	copy(out, l.stations)
	return out
}

// Names returns the station names in line order.
func (l *Line) Names() []string {
	names := make([]string, len(l.stations))
	for i, station := range l.stations {
		names[i] = station.Name
	}
	return names
}

// IndexOf looks up a station by exact name.
func (l *Line) IndexOf(name string) (int, bool) {
	i, ok := l.index[name]
	return i, ok
}

// Segment returns a copy of the stations in the inclusive range [start, end].
func (l *Line) Segment(start, end int) []Station {
	out := make([]Station, end-start+1)
	copy(out, l.stations[start:end+1])
	return out
}

// Coordinates returns the positions of the stations in [start, end].
func (l *Line) Coordinates(start, end int) []Coordinate {
	coords := make([]Coordinate, 0, end-start+1)
	for i := start; i <= end; i++ {
		coords = append(coords, l.stations[i].Position)
	}
	return coords
}
