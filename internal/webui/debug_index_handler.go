package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"github.com/transsib/navigator/internal/railway"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := debugTemplate.Execute(w, debugData{
		Title: title,
		Pre:   dumper.Sdump(data),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var data interface{}
	var title string

	switch query.Get("dataType") {
	case "stations":
		data = webUI.Engine.Line().Stations()
		title = "Stations"
	case "config":
		data = webUI.Engine.Config()
		title = "Engine configuration"
	case "route":
		result, err := webUI.Engine.Compute(railway.Selection{
			From: query.Get("from"),
			To:   query.Get("to"),
		})
		if err != nil {
			data = map[string]string{"error": err.Error()}
		} else {
			data = result
		}
		title = "Route"
	case "db":
		title = "Station database"
		if webUI.StationDB == nil {
			data = map[string]string{"error": "station database is not configured"}
			break
		}
		counts, err := webUI.StationDB.TableCounts(r.Context())
		if err != nil {
			data = map[string]string{"error": err.Error()}
			break
		}
		meta, err := webUI.StationDB.GetImportMetadata(r.Context())
		if err != nil {
			data = map[string]interface{}{"tables": counts, "metadata": err.Error()}
			break
		}
		data = map[string]interface{}{"tables": counts, "metadata": meta}
	default:
		data = map[string]string{
			"error": "Please use one of the following: stations, config, route, db.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
