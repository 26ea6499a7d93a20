// Package catalog builds the in-memory sound catalog from the music
// library on disk and narrows it by search terms.
package catalog

// Sound is one catalog entry describing a single audio asset. The list
// is rebuilt from the filesystem on every request, so IDs are positional
// and only stable while the directory listing is stable.
type Sound struct {
	ID          int      `json:"id" doc:"1-based position in the current catalog build"`
	Name        string   `json:"name" doc:"Display title derived from the audio filename"`
	Description string   `json:"description" doc:"First line of the sidecar description file"`
	Tags        []string `json:"tags" doc:"Tags parsed from the second line of the sidecar file"`
	Audio       string   `json:"audio" doc:"Download path for the audio file"`
	Cover       string   `json:"cover" doc:"Download path for the cover image"`
}
