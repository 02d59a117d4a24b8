package utils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractIDFromParams(t *testing.T) {
	testCases := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "Basic name",
			id:   "Omsk",
			want: "Omsk",
		},
		{
			name: "Name with JSON extension",
			id:   "Omsk.json",
			want: "Omsk",
		},
		{
			name: "Cyrillic name",
			id:   url.PathEscape("Новосибирск-Главный") + ".json",
			want: "Новосибирск-Главный",
		},
		{
			name: "Name with inner dots",
			id:   "St.Petersburg.json",
			want: "St.Petersburg",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name+" via httprouter", func(t *testing.T) {
			router := httprouter.New()

			var result string
			router.Handler(http.MethodGet, "/api/test/:name", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				result = ExtractIDFromParams(r, "name")
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/test/"+tc.id, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tc.want, result)
		})

		t.Run(tc.name+" via ServeMux", func(t *testing.T) {
			mux := http.NewServeMux()

			var result string
			mux.HandleFunc("GET /api/test/{name}", func(w http.ResponseWriter, r *http.Request) {
				result = ExtractIDFromParams(r, "name")
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/test/"+tc.id, nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tc.want, result)
		})
	}
}
