package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/transsib/navigator/internal/appconf"
	"github.com/transsib/navigator/internal/dataset"
	"github.com/transsib/navigator/internal/models"
	"github.com/transsib/navigator/internal/railway"
	"github.com/transsib/navigator/internal/utils"
)

func main() {
	appconf.LoadDotEnv(".env")

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "routeinfo",
		Usage:     "Inspect the station line and compute routes from the command line",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Usage:   "station dataset path or URL",
				Value:   "geospatial_data.csv",
				EnvVars: []string{"DATA_SOURCE"},
			},
			&cli.StringFlag{
				Name:    "format",
				Usage:   "dataset format (csv|gtfs)",
				Value:   dataset.FormatCSV,
				EnvVars: []string{"DATA_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "route-id",
				Usage:   "GTFS route to build the line from",
				EnvVars: []string{"GTFS_ROUTE_ID"},
			},
		},
		Commands: []*cli.Command{
			stationsCommand(),
			routeCommand(),
		},
	}
}

func loadEngine(c *cli.Context) (*railway.Engine, error) {
	line, err := dataset.LoadLine(c.Context, dataset.Options{
		Source:  c.String("data"),
		Format:  c.String("format"),
		RouteID: c.String("route-id"),
	})
	if err != nil {
		return nil, err
	}
	return railway.NewEngine(line, railway.DefaultConfig())
}

func stationsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stations",
		Usage: "list stations in line order",
		Action: func(c *cli.Context) error {
			engine, err := loadEngine(c)
			if err != nil {
				return err
			}
			for i, s := range engine.Line().Stations() {
				fmt.Fprintf(c.App.Writer, "%3d  %-24s %7.0f km  (%.4f, %.4f)\n",
					i, s.Name, s.LineCoordinate, s.Position.Lat, s.Position.Lon)
			}
			return nil
		},
	}
}

func routeCommand() *cli.Command {
	return &cli.Command{
		Name:  "route",
		Usage: "compute the segment, viewport and trip summary between two stations",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "departure station"},
			&cli.StringFlag{Name: "to", Usage: "arrival station"},
			&cli.BoolFlag{Name: "json", Usage: "print the route entry as JSON"},
		},
		Action: func(c *cli.Context) error {
			engine, err := loadEngine(c)
			if err != nil {
				return err
			}

			result, err := engine.Compute(railway.Selection{
				From: c.String("from"),
				To:   c.String("to"),
			})
			if err != nil {
				return err
			}

			if c.Bool("json") {
				points, heading := utils.SegmentPath(result.Segment)
				enc := json.NewEncoder(c.App.Writer)
				enc.SetIndent("", "  ")
				return enc.Encode(models.NewRouteEntry(result, points, heading))
			}

			writeRoute(c.App.Writer, result)
			return nil
		},
	}
}

func writeRoute(w io.Writer, result railway.Result) {
	r := result.State.Range
	fmt.Fprintf(w, "selection: %s [%d..%d]\n", result.State.Kind, r.Start, r.End)
	if s := result.Summary; s != nil {
		fmt.Fprintf(w, "%s ->%s\n", s.FromLabel, s.ToLabel)
		fmt.Fprintln(w, s.DistanceText)
		fmt.Fprintln(w, s.DurationText)
		fmt.Fprintln(w, s.StopsText)
	}
	vp := result.Viewport
	fmt.Fprintf(w, "viewport: zoom=%.2f center=(%.4f, %.4f)\n", vp.Zoom, vp.CenterLat, vp.CenterLon)
}
