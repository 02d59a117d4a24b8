package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/transsib/navigator/internal/railway"
	"github.com/transsib/navigator/internal/utils"
)

// Delimiter separates fields in the geospatial station file.
const Delimiter = ';'

// stationRow is one line of the geospatial file. Extra columns are ignored.
type stationRow struct {
	Lat        float64 `csv:"lat"`
	Lon        float64 `csv:"lon"`
	Name       string  `csv:"name"`
	Coordinate float64 `csv:"coordinate"`
}

var utf8BOM = []byte("\xef\xbb\xbf")

// ParseCSV decodes a ";"-delimited file with a lat;lon;name;coordinate header
// into stations in file order.
func ParseCSV(data []byte) ([]railway.Station, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.Comma = Delimiter
	r.TrimLeadingSpace = true

	var rows []stationRow
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, fmt.Errorf("error parsing station csv: %w", err)
	}

	stations := make([]railway.Station, 0, len(rows))
	seen := make(map[string]int, len(rows))
	for i, row := range rows {
		// header is line 1
		lineNo := i + 2
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return nil, fmt.Errorf("station csv line %d: empty station name", lineNo)
		}
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("station csv line %d: duplicate station name %q (first on line %d)", lineNo, name, prev)
		}
		if err := utils.ValidateLatitude(row.Lat); err != nil {
			return nil, fmt.Errorf("station csv line %d: %w", lineNo, err)
		}
		if err := utils.ValidateLongitude(row.Lon); err != nil {
			return nil, fmt.Errorf("station csv line %d: %w", lineNo, err)
		}
		seen[name] = lineNo

		stations = append(stations, railway.Station{
			Name:           name,
			Position:       railway.Coordinate{Lat: row.Lat, Lon: row.Lon},
			LineCoordinate: row.Coordinate,
		})
	}

	return stations, nil
}
