package stationdb

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/transsib/navigator/internal/logging"
	"github.com/transsib/navigator/internal/railway"
)

// ImportMetadata describes the last successful import.
type ImportMetadata struct {
	FileHash     string
	FileSource   string
	StationCount int
	ImportTime   int64 // unix seconds
}

// ErrNoImport is returned by GetImportMetadata before the first import.
var ErrNoImport = errors.New("no station import recorded")

// HashStations is a content hash of the ordered station list.
func HashStations(stations []railway.Station) string {
	h := sha256.New()
	for _, s := range stations {
		h.Write([]byte(s.Name))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatFloat(s.Position.Lat, 'g', -1, 64)))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatFloat(s.Position.Lon, 'g', -1, 64)))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatFloat(s.LineCoordinate, 'g', -1, 64)))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ImportStations replaces the stored catalogue with stations. The import is
// skipped when the stored content hash already matches; the returned bool
// reports whether rows were written.
func (c *Client) ImportStations(ctx context.Context, source string, stations []railway.Station) (imported bool, err error) {
	hash := HashStations(stations)

	meta, err := c.GetImportMetadata(ctx)
	switch {
	case err == nil && meta.FileHash == hash:
		logging.LogOperation(c.logger, "station_import_skipped",
			slog.String("source", source),
			slog.String("hash", hash))
		return false, nil
	case err != nil && !errors.Is(err, ErrNoImport):
		return false, err
	}

	start := time.Now()
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, c.logger, "station_import")

	if _, err := tx.ExecContext(ctx, "DELETE FROM stations"); err != nil {
		return false, fmt.Errorf("error clearing stations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO stations (seq, name, lat, lon, line_coordinate)
		VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return false, fmt.Errorf("error preparing statement: %w", err)
	}
	defer logging.HandleDeferredError(&err, stmt.Close, c.logger, "station_insert_statement")

	for i, s := range stations {
		if _, err := stmt.ExecContext(ctx, i, s.Name, s.Position.Lat, s.Position.Lon, s.LineCoordinate); err != nil {
			return false, fmt.Errorf("error inserting station %q: %w", s.Name, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO import_metadata (id, file_hash, file_source, station_count, import_time)
		VALUES (1, ?, ?, ?, ?);
	`, hash, source, len(stations), time.Now().Unix())
	if err != nil {
		return false, fmt.Errorf("error recording import metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("error committing transaction: %w", err)
	}

	logging.LogOperation(c.logger, "station_import_completed",
		slog.String("source", source),
		slog.Int("stations", len(stations)),
		slog.Duration("duration", time.Since(start)))

	return true, nil
}

// ListStations returns the stored catalogue in line order.
func (c *Client) ListStations(ctx context.Context) ([]railway.Station, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT name, lat, lon, line_coordinate
		FROM stations
		ORDER BY seq;
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying stations: %w", err)
	}
	defer logging.SafeCloseWithLogging(rows, c.logger, "station_rows")

	var stations []railway.Station
	for rows.Next() {
		var s railway.Station
		if err := rows.Scan(&s.Name, &s.Position.Lat, &s.Position.Lon, &s.LineCoordinate); err != nil {
			return nil, fmt.Errorf("error scanning station: %w", err)
		}
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stations: %w", err)
	}

	return stations, nil
}

// LoadLine builds a railway.Line from the stored catalogue.
func (c *Client) LoadLine(ctx context.Context) (*railway.Line, error) {
	stations, err := c.ListStations(ctx)
	if err != nil {
		return nil, err
	}
	return railway.NewLine(stations)
}

func (c *Client) GetImportMetadata(ctx context.Context) (ImportMetadata, error) {
	var meta ImportMetadata
	err := c.DB.QueryRowContext(ctx, `
		SELECT file_hash, file_source, station_count, import_time
		FROM import_metadata
		WHERE id = 1;
	`).Scan(&meta.FileHash, &meta.FileSource, &meta.StationCount, &meta.ImportTime)
	if errors.Is(err, sql.ErrNoRows) {
		return ImportMetadata{}, ErrNoImport
	}
	if err != nil {
		return ImportMetadata{}, fmt.Errorf("error reading import metadata: %w", err)
	}
	return meta, nil
}

// TableCounts returns the row count of every user table.
func (c *Client) TableCounts(ctx context.Context) (map[string]int, error) {
	rows, err := c.DB.QueryContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%'")
	if err != nil {
		return nil, fmt.Errorf("error querying table names: %w", err)
	}
	defer logging.SafeCloseWithLogging(rows, c.logger, "table_name_rows")

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating table names: %w", err)
	}

	counts := make(map[string]int, len(tables))
	for _, table := range tables {
		var count int
		if err := c.DB.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count); err != nil {
			return nil, err
		}
		counts[table] = count
	}
	return counts, nil
}
