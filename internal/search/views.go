// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/seekspot/pkg/types"
)

// SortKey orders a result list.
type SortKey string

const (
	ByDistance SortKey = "distance"
	ByRating   SortKey = "rating"
	ByPrice    SortKey = "price"
)

// ParseSortKey accepts "distance", "rating", or "price" (case-insensitive).
// An empty string means distance.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return ByDistance, nil
	case ByDistance, ByRating, ByPrice:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort key %q: want distance, rating, or price", s)
	}
}

// SortPlaces sorts in place: distance and price ascending, rating
// descending. The sort is stable.
func SortPlaces(places []types.Place, by SortKey) {
	var less func(a, b types.Place) bool
	switch by {
	case ByRating:
		less = func(a, b types.Place) bool { return rating(a) > rating(b) }
	case ByPrice:
		less = func(a, b types.Place) bool { return a.Price < b.Price }
	default:
		less = func(a, b types.Place) bool { return a.Distance < b.Distance }
	}
	sort.SliceStable(places, func(i, j int) bool { return less(places[i], places[j]) })
}

func rating(p types.Place) float64 {
	r, err := strconv.ParseFloat(p.Rating, 64)
	if err != nil {
		return 0
	}
	return r
}

// FilterByCategory returns the places with a category label containing
// substr (case-insensitive). An empty substr returns places unchanged.
func FilterByCategory(places []types.Place, substr string) []types.Place {
	needle := strings.ToLower(strings.TrimSpace(substr))
	if needle == "" {
		return places
	}
	var out []types.Place
	for _, p := range places {
		for _, c := range p.Categories {
			if strings.Contains(strings.ToLower(c), needle) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Categories returns the sorted set of category labels across places.
func Categories(places []types.Place) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range places {
		for _, c := range p.Categories {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Limit truncates places to at most n; n <= 0 means no limit.
func Limit(places []types.Place, n int) []types.Place {
	if n > 0 && len(places) > n {
		return places[:n]
	}
	return places
}
