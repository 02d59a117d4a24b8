package restapi

import (
	"net/http"
	"net/http/pprof"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func registerPprofHandlers(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/debug/pprof/", pprof.Index)
	router.HandlerFunc(http.MethodGet, "/debug/pprof/cmdline", pprof.Cmdline)
	router.HandlerFunc(http.MethodGet, "/debug/pprof/profile", pprof.Profile)
	router.HandlerFunc(http.MethodGet, "/debug/pprof/symbol", pprof.Symbol)
	router.HandlerFunc(http.MethodGet, "/debug/pprof/trace", pprof.Trace)
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/where/current-time.json", validateAPIKey(api, api.currentTimeHandler))
	router.Handler(http.MethodGet, "/api/where/stations.json", validateAPIKey(api, api.stationsHandler))
	router.Handler(http.MethodGet, "/api/where/station/:name", validateAPIKey(api, api.stationHandler))
	router.Handler(http.MethodGet, "/api/where/route.json", validateAPIKey(api, api.routeHandler))
	router.Handler(http.MethodGet, "/api/where/viewer-config.json", validateAPIKey(api, api.viewerConfigHandler))

	router.NotFound = http.HandlerFunc(api.sendNotFound)

	if api.Config.EnablePprof {
		registerPprofHandlers(router)
	}
}

// Handler wraps router in the middleware chain: request logging, security
// headers, rate limiting and compression, outermost first.
func (api *RestAPI) Handler(router http.Handler) http.Handler {
	var h http.Handler = router
	h = CompressionMiddleware(h)
	if api.rateLimiter != nil {
		h = api.rateLimiter.Handler(h)
	}
	h = api.WithSecurityHeaders(h)
	h = NewRequestLoggingMiddleware(api.Logger)(h)
	return h
}
