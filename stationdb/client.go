// Package stationdb keeps a SQLite copy of the station catalogue so the
// server can start from the last good import when the dataset source is
// unreachable.
package stationdb

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Client is the main entry point for the library
type Client struct {
	config Config
	DB     *sql.DB
	logger *slog.Logger
}

// NewClient creates a new Client with the provided configuration
func NewClient(config Config) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, fmt.Errorf("unable to create DB: %w", err)
	}

	logger := slog.Default().With(slog.String("component", "stationdb"))
	if config.verbose {
		logger.Info("station database ready", slog.String("path", config.DBPath))
	}

	return &Client{
		config: config,
		DB:     db,
		logger: logger,
	}, nil
}

// WithLogger replaces the client's logger.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	c.logger = logger.With(slog.String("component", "stationdb"))
	return c
}

func (c *Client) Close() error {
	return c.DB.Close()
}
