package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// spaHandler serves files from dir and falls back to dir/index.html for any
// path that is not a file, so client-side routes load the app.
type spaHandler struct {
	dir string
}

func (s spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
		WriteError(w, "Not found", http.StatusNotFound)
		return
	}

	name := filepath.Join(s.dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))

	info, err := os.Stat(name)
	if err != nil || info.IsDir() {
		name = filepath.Join(s.dir, "index.html")
		if _, err := os.Stat(name); err != nil {
			http.NotFound(w, r)
			return
		}
	}

	http.ServeFile(w, r, name)
}
