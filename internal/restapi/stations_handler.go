package restapi

import (
	"net/http"
	"time"

	"github.com/transsib/navigator/internal/models"
	"github.com/transsib/navigator/internal/utils"
)

// currentTimeHandler reports the server clock.
func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewOKResponse(models.NewCurrentTimeData(time.Now())))
}

// stationsHandler lists every station in line order.
func (api *RestAPI) stationsHandler(w http.ResponseWriter, r *http.Request) {
	stations := models.NewStationList(0, api.Engine.Line().Stations())
	api.sendResponse(w, r, models.NewListResponse(stations, models.NewEmptyReferences()))
}

// stationHandler looks a station up by its exact name.
func (api *RestAPI) stationHandler(w http.ResponseWriter, r *http.Request) {
	name := utils.ExtractIDFromParams(r, "name")

	if name == "" {
		api.validationErrorResponse(w, r, map[string][]string{"name": {"station name is required"}})
		return
	}
	if err := utils.ValidateStationName(name); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"name": {err.Error()}})
		return
	}

	line := api.Engine.Line()
	idx, ok := line.IndexOf(name)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	station := models.NewStation(idx, line.Station(idx))
	api.sendResponse(w, r, models.NewEntryResponse(station, models.NewEmptyReferences()))
}

// viewerConfigHandler returns what a map client needs before the first selection.
func (api *RestAPI) viewerConfigHandler(w http.ResponseWriter, r *http.Request) {
	cfg := models.NewViewerConfig(
		api.Config.Title,
		api.Config.MapStyle,
		api.Config.MapboxAccessToken,
		api.Engine.Config(),
		api.Engine.Line().Len(),
	)
	api.sendResponse(w, r, models.NewEntryResponse(cfg, models.NewEmptyReferences()))
}
