package railway

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestLine returns the western part of the Trans-Siberian main line.
func newTestLine(t *testing.T) *Line {
	t.Helper()

	line, err := NewLine([]Station{
		{Name: "Москва", Position: Coordinate{Lat: 55.7558, Lon: 37.6173}, LineCoordinate: 0},
		{Name: "Ярославль", Position: Coordinate{Lat: 57.6261, Lon: 39.8845}, LineCoordinate: 282},
		{Name: "Киров", Position: Coordinate{Lat: 58.6035, Lon: 49.6680}, LineCoordinate: 957},
		{Name: "Пермь", Position: Coordinate{Lat: 58.0105, Lon: 56.2502}, LineCoordinate: 1436},
		{Name: "Екатеринбург", Position: Coordinate{Lat: 56.8389, Lon: 60.6057}, LineCoordinate: 1816},
		{Name: "Омск", Position: Coordinate{Lat: 54.9885, Lon: 73.3242}, LineCoordinate: 2712},
	})
	require.NoError(t, err)
	return line
}

// newLinearLine returns a line whose stations sit at the given line coordinates.
func newLinearLine(t *testing.T, coordinates ...float64) *Line {
	t.Helper()

	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	require.LessOrEqual(t, len(coordinates), len(names))

	stations := make([]Station, len(coordinates))
	for i, c := range coordinates {
		stations[i] = Station{
			Name:           names[i],
			Position:       Coordinate{Lat: 50 + float64(i), Lon: 80 + float64(i)},
			LineCoordinate: c,
		}
	}

	line, err := NewLine(stations)
	require.NoError(t, err)
	return line
}

func newTestEngine(t *testing.T, line *Line) *Engine {
	t.Helper()

	engine, err := NewEngine(line, DefaultConfig())
	require.NoError(t, err)
	return engine
}
