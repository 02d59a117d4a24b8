package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"github.com/transsib/navigator/internal/app"
	"github.com/transsib/navigator/internal/appconf"
	"github.com/transsib/navigator/internal/dataset"
	"github.com/transsib/navigator/internal/logging"
	"github.com/transsib/navigator/internal/models"
	"github.com/transsib/navigator/internal/railway"
)

// createTestApi builds a RestAPI over the fixture station file.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	line, err := dataset.LoadLine(context.Background(), dataset.Options{
		Source: models.GetFixturePath(t, "geospatial_data.csv"),
		Format: dataset.FormatCSV,
	})
	require.NoError(t, err)

	engine, err := railway.NewEngine(line, railway.DefaultConfig())
	require.NoError(t, err)

	application := &app.Application{
		Config: appconf.Config{
			Env:       appconf.Test,
			ApiKeys:   []string{"TEST"},
			RateLimit: 100,
			Title:     "ТрансCиб Навигатор",
			MapStyle:  "mapbox://styles/mapbox/dark-v11",
		},
		Logger: logging.NewStructuredLogger(io.Discard, slog.LevelDebug),
		Engine: engine,
	}

	api := NewRestAPI(application)
	t.Cleanup(api.Close)
	return api
}

func newTestServer(t *testing.T, api *RestAPI) *httptest.Server {
	t.Helper()
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(api.Handler(router))
	t.Cleanup(server.Close)
	return server
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()
	resp, body := fetch(t, newTestServer(t, api), endpoint)

	var response models.ResponseModel
	require.NoError(t, json.Unmarshal(body, &response), "body: %s", body)
	return resp, response
}

func fetch(t *testing.T, server *httptest.Server, endpoint string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, bytes.TrimSpace(body)
}

// entryOf extracts data.entry as a generic map.
func entryOf(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "entry should be an object")
	return entry
}

func fieldErrorsOf(t *testing.T, body []byte) map[string][]string {
	t.Helper()
	var resp struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(body, &resp), "body: %s", body)
	return resp.FieldErrors
}
