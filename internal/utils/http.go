package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams retrieves a path parameter and strips a trailing ".json".
// httprouter parameters take precedence over net/http path values.
func ExtractIDFromParams(r *http.Request, paramName string) string {
	rawID := httprouter.ParamsFromContext(r.Context()).ByName(paramName)
	if rawID == "" {
		rawID = r.PathValue(paramName)
	}
	return strings.TrimSuffix(rawID, ".json")
}
