// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mock

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/seekspot/internal/geo"
	"github.com/pdiddy/seekspot/pkg/types"
)

var paris = types.Coordinate{Latitude: 48.8566, Longitude: 2.3522}

func TestGenerate_Paris(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		places := NewGenerator(seed).Generate(paris, "Paris", nil, 50, 2000)

		require.GreaterOrEqual(t, len(places), MinPlaces)
		require.Less(t, len(places), MinPlaces+PlaceSpread)

		ids := make(map[string]bool)
		for i, p := range places {
			assert.Less(t, p.Distance, 2000.0)
			assert.GreaterOrEqual(t, p.Distance, 0.0)
			assert.LessOrEqual(t, p.Price, 50.0)
			assert.Equal(t, 1, p.PriceTier)
			assert.NotEmpty(t, p.Name)
			assert.NotEmpty(t, p.Categories)
			assert.Equal(t, "Paris", p.City)
			assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
			ids[p.ID] = true
			if i > 0 {
				assert.LessOrEqual(t, places[i-1].Distance, p.Distance)
			}
		}
	}
}

func TestGenerate_DistanceMatchesOffset(t *testing.T) {
	origins := []types.Coordinate{paris, {Latitude: 40.9906, Longitude: 29.0306}, {Latitude: -33.8688, Longitude: 151.2093}}
	for _, origin := range origins {
		places := NewGenerator(7).Generate(origin, "", []string{"coffee"}, 80, 5000)
		for _, p := range places {
			actual := geo.Distance(origin, p.Coordinate())
			// The meters-to-degrees projection is approximate; a fraction of
			// a percent is expected.
			assert.InDelta(t, p.Distance, actual, 0.01*p.Distance+1, "place %s", p.ID)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := NewGenerator(42).Generate(paris, "Paris", []string{"wine", "sushi"}, 120, 3000)
	b := NewGenerator(42).Generate(paris, "Paris", []string{"wine", "sushi"}, 120, 3000)
	assert.Equal(t, a, b)

	c := NewGenerator(43).Generate(paris, "Paris", []string{"wine", "sushi"}, 120, 3000)
	assert.NotEqual(t, a, c)
}

func TestGenerate_Budget(t *testing.T) {
	tests := []struct {
		budget float64
		tier   int
	}{
		{5, 1},
		{10, 1},
		{125, 1},
		{126, 2},
		{300, 3},
		{2000, 4},
	}
	for _, tt := range tests {
		t.Run(strconv.FormatFloat(tt.budget, 'f', -1, 64), func(t *testing.T) {
			assert.Equal(t, tt.tier, PriceTier(tt.budget))
			for _, p := range NewGenerator(3).Generate(paris, "Paris", nil, tt.budget, 1000) {
				assert.LessOrEqual(t, p.Price, tt.budget)
				assert.GreaterOrEqual(t, p.Price, 0.0)
				assert.Equal(t, tt.tier, p.PriceTier)
				if tt.budget >= 100 {
					assert.GreaterOrEqual(t, p.Price, math.Floor(0.3*tt.budget))
					assert.Less(t, p.Price, 0.9*tt.budget)
				}
			}
		})
	}
}

func TestGenerate_Ratings(t *testing.T) {
	for _, p := range NewGenerator(9).Generate(paris, "Paris", nil, 60, 1000) {
		r, err := strconv.ParseFloat(p.Rating, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r, 3.5)
		assert.LessOrEqual(t, r, 5.0)
		assert.Len(t, strings.SplitN(p.Rating, ".", 2)[1], 1)
	}
}

func TestGenerate_TemplatedNames(t *testing.T) {
	spa := templates["spa"]
	for _, p := range NewGenerator(11).Generate(paris, "Paris", []string{"spa"}, 60, 1000) {
		assert.Equal(t, []string{"Spa"}, p.Categories)
		name := strings.TrimPrefix(p.Name, "The ")
		parts := strings.SplitN(name, " ", 2)
		require.Len(t, parts, 2)
		assert.Contains(t, spa.prefixes, parts[0])
		assert.Contains(t, spa.suffixes, parts[1])
	}
}

func TestGenerate_ExtraCategories(t *testing.T) {
	for _, p := range NewGenerator(5).Generate(paris, "Paris", []string{"pizza"}, 60, 1000) {
		require.Len(t, p.Categories, 2)
		assert.Equal(t, "Restaurant", p.Categories[0])
	}
	for _, p := range NewGenerator(5).Generate(paris, "Paris", []string{"pub"}, 60, 1000) {
		require.Len(t, p.Categories, 2)
		assert.Equal(t, "Bar", p.Categories[0])
	}
}

func TestGenerate_GenericNames(t *testing.T) {
	// point_of_interest has no template, so names use the generic parts.
	for _, p := range NewGenerator(13).Generate(paris, "Paris", []string{"zeppelin"}, 60, 1000) {
		assert.NotEmpty(t, strings.TrimSpace(p.Name))
		assert.Equal(t, []string{"Point Of Interest"}, p.Categories)
	}
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "https://source.unsplash.com/random/800x600/?bar,new+york", ImageURL("bar", "New York"))
	assert.Equal(t, "https://source.unsplash.com/random/800x600/?sushi", ImageURL("Sushi", ""))
}
