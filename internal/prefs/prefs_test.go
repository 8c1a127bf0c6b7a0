package prefs

import (
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/seekspot/pkg/types"
)

func TestMapToCategories(t *testing.T) {
	tests := []struct {
		name  string
		prefs []string
		want  []types.CategoryTag
	}{
		{"empty defaults to restaurant", nil, []types.CategoryTag{"restaurant"}},
		{"sushi", []string{"sushi"}, []types.CategoryTag{"restaurant"}},
		{"case insensitive", []string{"SPA"}, []types.CategoryTag{"spa"}},
		{"multi-tag entry", []string{"hotel"}, []types.CategoryTag{"lodging", "hotel"}},
		{"multi-word entry", []string{"live music"}, []types.CategoryTag{"night_club", "bar"}},
		{"unknown token", []string{"zeppelin"}, []types.CategoryTag{"point_of_interest"}},
		{"union deduplicated in first-seen order", []string{"pizza", "cocktails", "sushi", "wine"}, []types.CategoryTag{"restaurant", "bar"}},
		{"unknown and known", []string{"quirky", "coffee"}, []types.CategoryTag{"point_of_interest", "cafe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapToCategories(tt.prefs))
		})
	}
}

func TestMapToCategoriesIsDeterministic(t *testing.T) {
	first := MapToCategories([]string{"spa", "gym", "bar"})
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, MapToCategories([]string{"spa", "gym", "bar"}))
	}
	// Repeating tokens does not change the set.
	assert.ElementsMatch(t, first, MapToCategories([]string{"spa", "gym", "bar", "spa", "gym"}))
}

func TestMapToCategoriesAsSet(t *testing.T) {
	a := MapToCategories([]string{"dessert", "beer"})
	b := MapToCategories([]string{"beer", "dessert"})
	assert.ElementsMatch(t, a, b)
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown(" Sushi "))
	assert.False(t, IsKnown("zeppelin"))
}

func TestDictionaryOnlyUsesKnownTags(t *testing.T) {
	known := make(map[types.CategoryTag]bool)
	for _, tag := range ExtendedCategories {
		known[tag] = true
	}
	// These tags appear only as lookup targets, never in the broad list.
	for _, tag := range []types.CategoryTag{"store", "supermarket", "meal_delivery", "ice_cream", "real_estate_agency", "health", "doctor", "dentist", "hospital", "pharmacy", "transit_station"} {
		known[tag] = true
	}
	for token, tags := range synonyms {
		assert.NotEmpty(t, tags, token)
		for _, tag := range tags {
			assert.True(t, known[tag], "token %q maps to unknown tag %q", token, tag)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"cafe", "Cafe"},
		{"shopping_mall", "Shopping Mall"},
		{"point_of_interest", "Point Of Interest"},
		{"sushi bar", "Sushi Bar"},
		{"  ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.in), tt.in)
	}
}

func TestLabels(t *testing.T) {
	tags := []types.CategoryTag{"night_club", "", "bar"}
	assert.Equal(t, []string{"Night Club", "Bar"}, Labels(tags))
	assert.Equal(t, []string{"Wine"}, Labels([]string{"wine"}))
}

func TestSourcesFormatted(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(name)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(src), "// Copyright Mesh Intelligence Inc., 2026. All rights reserved.\n"), "missing copyright header")
			formatted, err := format.Source(src)
			require.NoError(t, err)
			assert.Equal(t, string(formatted), string(src), "not gofmt-clean")
		})
	}
}
