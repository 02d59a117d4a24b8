// Package dataset loads the ordered station list of the line from a
// geospatial CSV file or a GTFS feed, local or remote.
package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/transsib/navigator/internal/logging"
	"github.com/transsib/navigator/internal/railway"
)

const (
	FormatCSV  = "csv"
	FormatGTFS = "gtfs"
)

type Options struct {
	// Source is a local path or an http(s) URL.
	Source string
	// Format is FormatCSV or FormatGTFS.
	Format string
	// RouteID selects the GTFS route. Ignored for CSV.
	RouteID string
}

// Load fetches and decodes the dataset described by opts.
func Load(ctx context.Context, opts Options) ([]railway.Station, error) {
	logger := logging.FromContext(ctx).With(slog.String("component", "dataset"))
	start := time.Now()

	data, err := Fetch(ctx, opts.Source)
	if err != nil {
		return nil, err
	}

	var stations []railway.Station
	switch opts.Format {
	case FormatCSV, "":
		stations, err = ParseCSV(data)
	case FormatGTFS:
		stations, err = ParseGTFS(data, opts.RouteID)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", opts.Format)
	}
	if err != nil {
		return nil, err
	}

	logging.LogOperation(logger, "dataset_loaded",
		slog.String("source", opts.Source),
		slog.String("format", opts.Format),
		slog.Int("stations", len(stations)),
		slog.Duration("duration", time.Since(start)))

	return stations, nil
}

// LoadLine is Load followed by railway.NewLine.
func LoadLine(ctx context.Context, opts Options) (*railway.Line, error) {
	stations, err := Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	return railway.NewLine(stations)
}
