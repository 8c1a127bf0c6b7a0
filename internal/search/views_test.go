// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/seekspot/pkg/types"
)

func samplePlaces() []types.Place {
	return []types.Place{
		{ID: "a", Name: "Alpha Bar", Categories: []string{"Bar", "Wine Bar"}, Rating: "4.1", Price: 30, Distance: 900},
		{ID: "b", Name: "Beta Cafe", Categories: []string{"Cafe"}, Rating: "4.8", Price: 12, Distance: 300},
		{ID: "c", Name: "Gamma Grill", Categories: []string{"Restaurant"}, Rating: "3.9", Price: 45, Distance: 1500},
		{ID: "d", Name: "Delta Pub", Categories: []string{"Bar"}, Rating: "4.8", Price: 30, Distance: 50},
	}
}

func ids(places []types.Place) []string {
	out := make([]string, len(places))
	for i, p := range places {
		out[i] = p.ID
	}
	return out
}

func TestSortPlaces(t *testing.T) {
	tests := []struct {
		by   SortKey
		want []string
	}{
		{ByDistance, []string{"d", "b", "a", "c"}},
		{ByRating, []string{"b", "d", "a", "c"}},
		{ByPrice, []string{"b", "a", "d", "c"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.by), func(t *testing.T) {
			places := samplePlaces()
			SortPlaces(places, tt.by)
			assert.Equal(t, tt.want, ids(places))
		})
	}
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, ByDistance, k)

	k, err = ParseSortKey(" Rating ")
	require.NoError(t, err)
	assert.Equal(t, ByRating, k)

	_, err = ParseSortKey("popularity")
	assert.ErrorContains(t, err, "unknown sort key")
}

func TestFilterByCategory(t *testing.T) {
	places := samplePlaces()
	assert.Equal(t, []string{"a", "d"}, ids(FilterByCategory(places, "bar")))
	assert.Equal(t, []string{"a"}, ids(FilterByCategory(places, "WINE")))
	assert.Empty(t, FilterByCategory(places, "spa"))
	assert.Len(t, FilterByCategory(places, ""), 4)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"Bar", "Cafe", "Restaurant", "Wine Bar"}, Categories(samplePlaces()))
	assert.Empty(t, Categories(nil))
}

func TestLimit(t *testing.T) {
	places := samplePlaces()
	assert.Len(t, Limit(places, 2), 2)
	assert.Len(t, Limit(places, 10), 4)
	assert.Len(t, Limit(places, 0), 4)
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(samplePlaces(), &buf)
	out := buf.String()
	assert.Contains(t, out, "Alpha Bar")
	assert.Contains(t, out, "1.5 km")
	assert.Contains(t, out, "50 m")
	assert.Contains(t, out, "4 places")

	buf.Reset()
	FormatTable(nil, &buf)
	assert.True(t, strings.HasPrefix(buf.String(), "No places found."))
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(samplePlaces(), &buf))

	var decoded []types.Place
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, samplePlaces(), decoded)
	assert.Contains(t, buf.String(), `"price_tier"`)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Kadıkö...", truncate("Kadıköy Moda Sahil", 9))
}

func TestSearchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved", "paris.yaml")
	out := Output{
		Request:    types.SearchRequest{Location: "Paris", Preferences: []string{"wine"}, Budget: 60, RadiusMeters: 2000},
		Origin:     paris,
		Categories: []types.CategoryTag{"bar"},
		Source:     SourceProvider,
		RawResults: 12,
		Places:     samplePlaces(),
	}
	require.NoError(t, WriteSearchFile(path, out))

	sf, err := ReadSearchFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, sf.Summary.Total)
	assert.False(t, sf.Summary.Timestamp.IsZero())
	assert.Equal(t, out, sf.Output())
}

func TestReadSearchFileErrors(t *testing.T) {
	_, err := ReadSearchFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading search file")
}
