package catalog

import "strings"

// Filter returns the sounds whose name or any tag contains term as a
// case-insensitive substring. An empty term returns the input unchanged.
func Filter(sounds []Sound, term string) []Sound {
	if term == "" {
		return sounds
	}

	needle := strings.ToLower(term)
	matched := make([]Sound, 0, len(sounds))
	for _, sound := range sounds {
		if matches(sound, needle) {
			matched = append(matched, sound)
		}
	}
	return matched
}

func matches(sound Sound, needle string) bool {
	if strings.Contains(strings.ToLower(sound.Name), needle) {
		return true
	}
	for _, tag := range sound.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
