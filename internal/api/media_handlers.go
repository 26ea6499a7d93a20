package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/soundboxapp/soundbox-server/internal/http/response"
)

// Media downloads are served straight off the chi router: the files go
// through http.ServeFile (Range support, conditional requests) instead
// of a serialized response body. The paths still appear in the OpenAPI
// document via documentMediaRoutes.

func (s *Server) registerMediaRoutes() {
	s.router.Get("/audio/{fileName}", s.handleDownloadAudio)
	s.router.Get("/cover/{fileName}", s.handleDownloadCover)
}

// handleDownloadAudio streams an audio file by name.
// GET /audio/{fileName}
func (s *Server) handleDownloadAudio(w http.ResponseWriter, r *http.Request) {
	s.serveMediaFile(w, r, s.config.Library.MusicPath, "audio/mpeg", "Audio file not found")
}

// handleDownloadCover streams a cover image by name.
// GET /cover/{fileName}
func (s *Server) handleDownloadCover(w http.ResponseWriter, r *http.Request) {
	s.serveMediaFile(w, r, s.config.Library.CoverPath, "image/jpeg", "Cover image not found")
}

// serveMediaFile checks that the named file exists inside dir and
// streams it with the fixed content type. Anything absent, and any name
// that could escape dir, yields a 404 with the route's error message.
func (s *Server) serveMediaFile(w http.ResponseWriter, r *http.Request, dir, contentType, notFoundMessage string) {
	fileName := chi.URLParam(r, "fileName")
	if !isValidMediaName(fileName) {
		response.NotFound(w, notFoundMessage, s.logger)
		return
	}

	path := filepath.Join(dir, fileName)
	if _, err := os.Stat(path); err != nil {
		response.NotFound(w, notFoundMessage, s.logger)
		return
	}

	w.Header().Set("Content-Type", contentType)
	http.ServeFile(w, r, path)
}

// isValidMediaName rejects empty names and path traversal attempts.
func isValidMediaName(name string) bool {
	if name == "" {
		return false
	}
	if strings.Contains(name, "/") || strings.Contains(name, "\\") || strings.Contains(name, "..") {
		return false
	}
	return true
}
