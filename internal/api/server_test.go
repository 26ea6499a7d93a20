package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundboxapp/soundbox-server/internal/catalog"
	"github.com/soundboxapp/soundbox-server/internal/config"
)

// testServer wraps the API server with its fixture directories.
type testServer struct {
	*Server
	api            humatest.TestAPI
	musicDir       string
	descriptionDir string
	coverDir       string
}

// setupTestServer creates a server over empty temp library directories.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	musicDir := t.TempDir()
	descriptionDir := t.TempDir()
	coverDir := t.TempDir()

	cfg := &config.Config{
		App:    config.AppConfig{Environment: "development"},
		Logger: config.LoggerConfig{Level: "error"},
		Server: config.ServerConfig{Port: "8080"},
		Library: config.LibraryConfig{
			MusicPath:       musicDir,
			DescriptionPath: descriptionDir,
			CoverPath:       coverDir,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	catalogService := catalog.NewService(musicDir, descriptionDir, logger)

	s := NewServer(cfg, catalogService, logger)

	return &testServer{
		Server:         s,
		api:            humatest.Wrap(t, s.api),
		musicDir:       musicDir,
		descriptionDir: descriptionDir,
		coverDir:       coverDir,
	}
}

// addSound writes an audio file and its sidecar description.
func (ts *testServer) addSound(t *testing.T, fileName, sidecar string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(ts.musicDir, fileName), []byte("audio-bytes"), 0o644))

	stem := strings.TrimSuffix(fileName, ".mp3")
	require.NoError(t, os.WriteFile(filepath.Join(ts.descriptionDir, stem+".txt"), []byte(sidecar), 0o644))
}

// get issues a plain HTTP request through the full middleware stack.
func (ts *testServer) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	ts.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.get(t, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestOpenAPIDocument(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.get(t, "/openapi.json")
	require.Equal(t, http.StatusOK, w.Code)

	doc := w.Body.String()
	// The generated document covers the huma route and the chi-served
	// download routes alike.
	assert.Contains(t, doc, `"/sounds"`)
	assert.Contains(t, doc, `"/audio/{fileName}"`)
	assert.Contains(t, doc, `"/cover/{fileName}"`)
	assert.Contains(t, doc, "SoundBox API")
}

func TestDocsUI(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.get(t, "/docs")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, strings.ToLower(w.Body.String()), "<html")
}
