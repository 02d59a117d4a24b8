// Package webui serves a plain HTML page that dumps the engine's state for
// debugging.
package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/transsib/navigator/internal/app"
)

type WebUI struct {
	*app.Application
}

func NewWebUI(application *app.Application) *WebUI {
	return &WebUI{Application: application}
}

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
}
