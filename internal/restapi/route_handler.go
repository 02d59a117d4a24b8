package restapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/transsib/navigator/internal/logging"
	"github.com/transsib/navigator/internal/models"
	"github.com/transsib/navigator/internal/railway"
	"github.com/transsib/navigator/internal/utils"
)

// routeHandler computes the segment, viewport and trip summary for a from/to
// selection. Either side may be omitted.
func (api *RestAPI) routeHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sel := railway.Selection{
		From: query.Get("from"),
		To:   query.Get("to"),
	}

	if fieldErrors := utils.ValidateSelectionParams(sel.From, sel.To); len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	result, err := api.Engine.Compute(sel)
	if err != nil {
		var unknown *railway.UnknownStationError
		if errors.As(err, &unknown) {
			api.validationErrorResponse(w, r, map[string][]string{
				string(unknown.Side): {err.Error()},
			})
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	points, heading := utils.SegmentPath(result.Segment)
	entry := models.NewRouteEntry(result, points, heading)

	references := models.NewEmptyReferences()
	references.Stations = models.NewStationList(result.State.Range.Start, result.Segment)

	logging.LogOperation(logging.FromContext(r.Context()), "route_computed",
		slog.String("kind", entry.Kind),
		slog.Int("start", entry.StartIndex),
		slog.Int("end", entry.EndIndex))

	api.sendResponse(w, r, models.NewEntryResponse(entry, references))
}
