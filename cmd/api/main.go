package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/transsib/navigator/internal/app"
	"github.com/transsib/navigator/internal/appconf"
	"github.com/transsib/navigator/internal/dataset"
	"github.com/transsib/navigator/internal/logging"
	"github.com/transsib/navigator/internal/railway"
	"github.com/transsib/navigator/internal/restapi"
	"github.com/transsib/navigator/internal/webui"
	"github.com/transsib/navigator/stationdb"
)

const defaultTitle = "ТрансCиб Навигатор"

func main() {
	appconf.LoadDotEnv(".env")

	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewStructuredLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

// parseConfig reads flags, each defaulting to its environment variable.
func parseConfig(args []string, output io.Writer) (appconf.Config, error) {
	var cfg appconf.Config
	var env, apiKeys string

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.IntVar(&cfg.Port, "port", appconf.GetIntEnv("PORT", 4000), "API server port")
	fs.StringVar(&env, "env", appconf.GetEnv("APP_ENV", "development"), "Environment (development|test|production)")
	fs.StringVar(&apiKeys, "api-keys", appconf.GetEnv("API_KEYS", "test"), "Comma separated API keys")
	fs.IntVar(&cfg.RateLimit, "rate-limit", appconf.GetIntEnv("RATE_LIMIT", 100), "Requests per second per API key, negative disables")
	fs.StringVar(&cfg.DataSource, "data", appconf.GetEnv("DATA_SOURCE", "geospatial_data.csv"), "Station dataset path or URL")
	fs.StringVar(&cfg.DataFormat, "format", appconf.GetEnv("DATA_FORMAT", dataset.FormatCSV), "Dataset format (csv|gtfs)")
	fs.StringVar(&cfg.GTFSRouteID, "route-id", appconf.GetEnv("GTFS_ROUTE_ID", ""), "GTFS route to build the line from")
	fs.StringVar(&cfg.DBPath, "db", appconf.GetEnv("DB_PATH", ""), "SQLite station cache path, empty disables")
	fs.StringVar(&cfg.MapboxAccessToken, "mapbox-token", appconf.GetEnv("MAPBOX_ACCESS_TOKEN", ""), "Map tile access token handed to clients")
	fs.StringVar(&cfg.MapStyle, "map-style", appconf.GetEnv("MAP_STYLE", "mapbox://styles/mapbox/dark-v11"), "Map style URL")
	fs.StringVar(&cfg.Title, "title", appconf.GetEnv("APP_TITLE", defaultTitle), "Application title")
	fs.StringVar(&cfg.LogLevel, "log-level", appconf.GetEnv("LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")
	fs.BoolVar(&cfg.EnablePprof, "pprof", false, "Expose /debug/pprof")

	if err := fs.Parse(args); err != nil {
		return appconf.Config{}, err
	}

	cfg.Env = appconf.EnvFlagToEnvironment(env)
	cfg.ApiKeys = appconf.ParseAPIKeys(apiKeys)

	if cfg.DataFormat != dataset.FormatCSV && cfg.DataFormat != dataset.FormatGTFS {
		return appconf.Config{}, fmt.Errorf("unsupported -format %q", cfg.DataFormat)
	}
	if len(cfg.ApiKeys) == 0 {
		return appconf.Config{}, errors.New("at least one API key is required")
	}

	return cfg, nil
}

// loadLine loads the dataset and mirrors it into db. When the dataset cannot
// be loaded the last stored catalogue is used instead.
func loadLine(ctx context.Context, cfg appconf.Config, db *stationdb.Client, logger *slog.Logger) (*railway.Line, error) {
	stations, err := dataset.Load(ctx, dataset.Options{
		Source:  cfg.DataSource,
		Format:  cfg.DataFormat,
		RouteID: cfg.GTFSRouteID,
	})
	if err != nil {
		if db == nil {
			return nil, err
		}
		logging.LogError(logger, "dataset unavailable, using stored stations", err,
			slog.String("source", cfg.DataSource))
		line, dbErr := db.LoadLine(ctx)
		if errors.Is(dbErr, railway.ErrEmptyDataset) {
			return nil, fmt.Errorf("no stored stations to fall back on: %w", err)
		}
		return line, dbErr
	}

	line, err := railway.NewLine(stations)
	if err != nil {
		return nil, err
	}

	if db != nil {
		if _, err := db.ImportStations(ctx, cfg.DataSource, stations); err != nil {
			logging.LogError(logger, "failed to store stations", err)
		}
	}

	return line, nil
}

// buildApplication wires the engine, optional station database and logger.
func buildApplication(ctx context.Context, cfg appconf.Config, logger *slog.Logger) (*app.Application, error) {
	var db *stationdb.Client
	if cfg.DBPath != "" {
		var err error
		db, err = stationdb.NewClient(stationdb.NewConfig(cfg.DBPath, cfg.Env, cfg.Env == appconf.Development))
		if err != nil {
			return nil, err
		}
		db.WithLogger(logger)
	}

	line, err := loadLine(logging.WithLogger(ctx, logger), cfg, db, logger)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("failed to load stations: %w", err)
	}

	engine, err := railway.NewEngine(line, railway.DefaultConfig())
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	return &app.Application{
		Config:    cfg,
		Logger:    logger,
		Engine:    engine,
		StationDB: db,
	}, nil
}

func newHandler(application *app.Application) (http.Handler, func()) {
	api := restapi.NewRestAPI(application)
	router := httprouter.New()
	api.SetRoutes(router)
	webui.NewWebUI(application).SetWebUIRoutes(router)
	return api.Handler(router), api.Close
}

func run(cfg appconf.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if application.StationDB != nil {
		defer logging.SafeCloseWithLogging(application.StationDB, logger, "station_db")
	}

	handler, closeAPI := newHandler(application)
	defer closeAPI()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			slog.String("addr", srv.Addr),
			slog.String("env", cfg.Env.String()),
			slog.Int("stations", application.Engine.Line().Len()))
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
