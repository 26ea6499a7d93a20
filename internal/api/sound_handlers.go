package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/soundboxapp/soundbox-server/internal/catalog"
)

func (s *Server) registerSoundRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listSounds",
		Method:      http.MethodGet,
		Path:        "/sounds",
		Summary:     "List sounds",
		Description: "Returns the sound catalog, rebuilt from disk on every call. The optional search header narrows the result by name or tag.",
		Tags:        []string{"Sounds"},
	}, s.handleListSounds)
}

// === DTOs ===

type ListSoundsInput struct {
	Search string `header:"search" doc:"Case-insensitive substring matched against sound names and tags"`
}

type ListSoundsOutput struct {
	Body []catalog.Sound
}

// handleListSounds rebuilds the catalog, applies the optional search
// filter, and returns 404 when nothing is left. An empty catalog and a
// search without matches share the same error payload.
func (s *Server) handleListSounds(ctx context.Context, input *ListSoundsInput) (*ListSoundsOutput, error) {
	sounds, err := s.catalog.Build(ctx)
	if err != nil {
		s.logger.Error("Failed to build sound catalog", "error", err)
		return nil, huma.Error500InternalServerError("Failed to build sound catalog")
	}

	sounds = catalog.Filter(sounds, input.Search)
	if len(sounds) == 0 {
		return nil, huma.Error404NotFound("No sounds found")
	}

	return &ListSoundsOutput{Body: sounds}, nil
}
