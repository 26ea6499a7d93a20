package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const (
	audioExt   = ".mp3"
	sidecarExt = ".txt"
	coverExt   = ".jpg"

	audioRoutePrefix = "/audio/"
	coverRoutePrefix = "/cover/"
)

// Service derives the sound catalog from the music directory and its
// sidecar description files. It holds no state between builds.
type Service struct {
	musicDir       string
	descriptionDir string
	logger         *slog.Logger
}

// NewService creates a catalog service over the given directories.
func NewService(musicDir, descriptionDir string, logger *slog.Logger) *Service {
	return &Service{
		musicDir:       musicDir,
		descriptionDir: descriptionDir,
		logger:         logger,
	}
}

// Build enumerates the music directory and derives one Sound per audio
// file, in directory-listing order. An unreadable music directory
// degrades to an empty catalog; a missing or malformed sidecar file
// aborts the whole build.
func (s *Service) Build(_ context.Context) ([]Sound, error) {
	entries, err := os.ReadDir(s.musicDir)
	if err != nil {
		s.logger.Error("Failed to read music directory", "path", s.musicDir, "error", err)
		return []Sound{}, nil
	}

	sounds := make([]Sound, 0, len(entries))
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), audioExt) {
			continue
		}

		sound, err := s.buildSound(entry.Name(), len(sounds)+1)
		if err != nil {
			return nil, err
		}
		sounds = append(sounds, sound)
	}

	return sounds, nil
}

// buildSound derives a single catalog entry from an audio filename and
// its sidecar description file.
func (s *Service) buildSound(fileName string, id int) (Sound, error) {
	stem := strings.TrimSuffix(fileName, audioExt)

	raw, err := os.ReadFile(filepath.Join(s.descriptionDir, stem+sidecarExt))
	if err != nil {
		return Sound{}, fmt.Errorf("read description for %s: %w", fileName, err)
	}

	// Line 0 is the description, line 1 holds the dash-separated tags.
	// Tags are kept verbatim, surrounding whitespace included.
	lines := strings.Split(string(raw), "\n")
	if len(lines) < 2 {
		return Sound{}, fmt.Errorf("description for %s has no tag line", fileName)
	}

	return Sound{
		ID:          id,
		Name:        deriveTitle(stem),
		Description: lines[0],
		Tags:        strings.Split(lines[1], "-"),
		Audio:       audioRoutePrefix + fileName,
		Cover:       coverRoutePrefix + stem + coverExt,
	}, nil
}

// deriveTitle turns a filename stem into a display title. Only the
// first underscore becomes a space; each space-separated word then gets
// its first rune upper-cased, except words still holding a leftover
// underscore, which stay verbatim ("cool_beat" -> "Cool Beat",
// "a_b_c" -> "A b_c").
func deriveTitle(stem string) string {
	words := strings.Split(strings.Replace(stem, "_", " ", 1), " ")
	for i, word := range words {
		if word == "" || strings.Contains(word, "_") {
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
