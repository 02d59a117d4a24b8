package app

import (
	"log/slog"

	"github.com/transsib/navigator/internal/appconf"
	"github.com/transsib/navigator/internal/railway"
	"github.com/transsib/navigator/stationdb"
)

// Application holds the dependencies shared by the HTTP handlers, helpers
// and middleware.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger
	Engine *railway.Engine
	// StationDB is nil unless a database path was configured.
	StationDB *stationdb.Client
}
