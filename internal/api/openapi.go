package api

import "github.com/danielgtaylor/huma/v2"

// documentMediaRoutes adds the chi-served download routes to the
// generated OpenAPI document, so /openapi.json describes the full HTTP
// surface even though these handlers bypass huma.
func (s *Server) documentMediaRoutes() {
	oapi := s.api.OpenAPI()
	oapi.Paths["/audio/{fileName}"] = mediaPathItem(
		"downloadAudio",
		"Download an audio file",
		"audio/mpeg",
		"Audio file not found",
	)
	oapi.Paths["/cover/{fileName}"] = mediaPathItem(
		"downloadCover",
		"Download a cover image",
		"image/jpeg",
		"Cover image not found",
	)
}

func mediaPathItem(operationID, summary, contentType, notFoundMessage string) *huma.PathItem {
	return &huma.PathItem{
		Get: &huma.Operation{
			OperationID: operationID,
			Summary:     summary,
			Tags:        []string{"Media"},
			Parameters: []*huma.Param{
				{
					Name:     "fileName",
					In:       "path",
					Required: true,
					Schema:   &huma.Schema{Type: huma.TypeString},
				},
			},
			Responses: map[string]*huma.Response{
				"200": {
					Description: "Raw file bytes",
					Content: map[string]*huma.MediaType{
						contentType: {
							Schema: &huma.Schema{Type: huma.TypeString, Format: "binary"},
						},
					},
				},
				"404": {
					Description: notFoundMessage,
					Content: map[string]*huma.MediaType{
						"application/json": {
							Schema: &huma.Schema{
								Type: huma.TypeObject,
								Properties: map[string]*huma.Schema{
									"error": {Type: huma.TypeString},
								},
							},
						},
					},
				},
			},
		},
	}
}
