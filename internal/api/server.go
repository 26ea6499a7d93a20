// Package api provides the HTTP API server and handlers for the
// SoundBox application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/soundboxapp/soundbox-server/internal/catalog"
	"github.com/soundboxapp/soundbox-server/internal/config"
	"github.com/soundboxapp/soundbox-server/internal/http/response"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	config  *config.Config
	catalog *catalog.Service
	router  *chi.Mux
	api     huma.API
	logger  *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(cfg *config.Config, catalogService *catalog.Service, logger *slog.Logger) *Server {
	s := &Server{
		config:  cfg,
		catalog: catalogService,
		router:  chi.NewRouter(),
		logger:  logger,
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("SoundBox API", "1.0.0")
	humaConfig.Info.Description = "Catalog and download API for the sound library"
	// The default schema-link transformer injects a $schema field into
	// object responses; error payloads must stay exactly {"error": ...}.
	// It is installed through CreateHooks, which run when the API is
	// created and re-append to Transformers and OnAddOperation.
	humaConfig.CreateHooks = nil
	humaConfig.Transformers = nil
	humaConfig.OnAddOperation = nil

	RegisterErrorHandler()
	s.api = humachi.New(s.router, humaConfig)

	s.registerSoundRoutes()
	s.registerMediaRoutes()
	s.documentMediaRoutes()
	s.registerHealthRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "search"},
		MaxAge:         300,
	}))
}

// registerHealthRoutes configures the liveness endpoint.
func (s *Server) registerHealthRoutes() {
	s.router.Get("/health", s.handleHealthCheck)
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}
