package restapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStationsHandlerRequiresValidApiKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/stations.json?key=invalid")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, model.Code)
	assert.Equal(t, "permission denied", model.Text)
}

func TestStationsHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/stations.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, 2, model.Version)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 14)

	first := list[0].(map[string]interface{})
	assert.Equal(t, "Москва", first["name"])
	assert.Equal(t, 0.0, first["index"])

	last := list[13].(map[string]interface{})
	assert.Equal(t, "Владивосток", last["name"])
	assert.Equal(t, 13.0, last["index"])
	assert.Equal(t, 9288.0, last["lineCoordinate"])

	assert.Equal(t, false, data["limitExceeded"])
}

func TestStationHandler(t *testing.T) {
	api := createTestApi(t)

	t.Run("known station", func(t *testing.T) {
		resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/where/station/"+url.PathEscape("Омск")+".json?key=TEST")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		entry := entryOf(t, model)
		assert.Equal(t, "Омск", entry["name"])
		assert.Equal(t, 6.0, entry["index"])
		assert.InDelta(t, 54.9885, entry["lat"], 1e-9)
	})

	t.Run("without json suffix", func(t *testing.T) {
		resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/where/station/"+url.PathEscape("Улан-Удэ")+"?key=TEST")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Улан-Удэ", entryOf(t, model)["name"])
	})

	t.Run("unknown station", func(t *testing.T) {
		resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/where/station/"+url.PathEscape("Берлин")+".json?key=TEST")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, http.StatusNotFound, model.Code)
		assert.Equal(t, "resource not found", model.Text)
	})

	t.Run("markup in name", func(t *testing.T) {
		resp, body := fetch(t, newTestServer(t, api), "/api/where/station/"+url.PathEscape("<b>")+"?key=TEST")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, []string{"station name contains invalid characters"}, fieldErrorsOf(t, body)["name"])
	})
}

func TestViewerConfigHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/viewer-config.json?key=TEST")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, "ТрансCиб Навигатор", entry["title"])
	assert.Equal(t, "mapbox://styles/mapbox/dark-v11", entry["mapStyle"])
	assert.Equal(t, "Откуда", entry["fromPlaceholder"])
	assert.Equal(t, "Куда", entry["toPlaceholder"])
	assert.Equal(t, 14.0, entry["stationCount"])
	assert.Equal(t, map[string]interface{}{"zoom": 2.3, "centerLat": 50.0, "centerLon": 88.0}, entry["defaultViewport"])
}

func TestCurrentTimeHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/current-time.json?key=TEST")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, entry["readableTime"])
	assert.Greater(t, entry["time"], 0.0)
}

func TestUnknownPathReturnsNotFound(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/agencies.json?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}
