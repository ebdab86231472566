package api

import (
	"net/http"
	"strings"

	"github.com/d9705996/kysai/internal/api/render"
)

// staticHandler serves files from dir under prefix. Directory listings are
// not served.
func staticHandler(prefix, dir string) http.Handler {
	fileServer := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			render.Detail(w, http.StatusNotFound, "Not Found")
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}
