// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prefs maps free-text preference tokens ("sushi", "spa") to the
// provider's place category vocabulary.
package prefs

import (
	"strings"

	"github.com/pdiddy/seekspot/pkg/types"
)

// MapToCategories returns the deduplicated union of category tags for prefs,
// in first-seen order. Each token is lowercased and trimmed, then looked up
// exactly; unknown tokens map to point_of_interest. An empty input maps to
// restaurant.
func MapToCategories(prefs []string) []types.CategoryTag {
	var out []types.CategoryTag
	seen := make(map[types.CategoryTag]bool)
	for _, p := range prefs {
		for _, tag := range Lookup(p) {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	if len(out) == 0 {
		return []types.CategoryTag{types.Restaurant}
	}
	return out
}

// Lookup returns the tags for a single token, or point_of_interest when the
// token is unknown. The returned slice must not be modified.
func Lookup(token string) []types.CategoryTag {
	if tags, ok := synonyms[normalize(token)]; ok {
		return tags
	}
	return []types.CategoryTag{types.PointOfInterest}
}

// IsKnown reports whether token has a dictionary entry.
func IsKnown(token string) bool {
	_, ok := synonyms[normalize(token)]
	return ok
}

// Contains reports whether tags includes tag.
func Contains(tags []types.CategoryTag, tag string) bool {
	for _, t := range tags {
		if string(t) == tag {
			return true
		}
	}
	return false
}

func normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
