package handler

import (
	"io/fs"
	"net/http"
)

// HomeHandler serves the entry form and its assets
type HomeHandler struct {
	files fs.FS
}

// NewHomeHandler creates a new HomeHandler over the embedded static files
func NewHomeHandler(files fs.FS) *HomeHandler {
	return &HomeHandler{files: files}
}

// Home serves the registration form
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, h.files, "index.html")
}

// Static serves files under /static/
func (h *HomeHandler) Static() http.Handler {
	return http.StripPrefix("/static/", http.FileServerFS(h.files))
}
